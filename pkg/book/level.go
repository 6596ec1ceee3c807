package book

// priceLevel holds the FIFO queue of resting orders at one tick price
// plus a running aggregate. totalQty always equals the sum of member
// order quantities; an empty level is removed from its side's index
// rather than kept around.
type priceLevel struct {
	price    int64
	orders   []*Order // FIFO, ascending seq
	totalQty int64
}

func (l *priceLevel) enqueue(o *Order) {
	l.orders = append(l.orders, o)
	l.totalQty += o.Qty
}

// front returns the next order eligible to trade at this level.
func (l *priceLevel) front() *Order {
	return l.orders[0]
}

// applyFill debits qty from the head order and the aggregate, popping
// the head once it is fully consumed.
func (l *priceLevel) applyFill(qty int64) {
	head := l.orders[0]
	head.Qty -= qty
	l.totalQty -= qty
	if head.Qty == 0 {
		l.orders[0] = nil // drop the reference, the order is done
		l.orders = l.orders[1:]
	}
}

func (l *priceLevel) empty() bool {
	return len(l.orders) == 0
}
