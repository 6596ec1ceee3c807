package book

import "github.com/google/btree"

// BookSide is one price-ordered half of the book: an ordered mapping
// from tick price to price level. Bids are served highest price first,
// asks lowest first. The side owns its levels and the orders inside
// them; no references escape.
type BookSide struct {
	side   Side
	levels *btree.BTreeG[*priceLevel]
}

func newBookSide(side Side) *BookSide {
	return &BookSide{
		side: side,
		levels: btree.NewG(2, func(a, b *priceLevel) bool {
			return a.price < b.price
		}),
	}
}

// insert appends the order to the FIFO queue of its price level,
// creating the level if this is the first resting order at that price.
func (s *BookSide) insert(o *Order) {
	lvl, ok := s.levels.Get(&priceLevel{price: o.Price})
	if !ok {
		lvl = &priceLevel{price: o.Price}
		s.levels.ReplaceOrInsert(lvl)
	}
	lvl.enqueue(o)
}

// best returns the extreme level: highest price for bids, lowest for asks.
func (s *BookSide) best() (*priceLevel, bool) {
	if s.side == Buy {
		return s.levels.Max()
	}
	return s.levels.Min()
}

// frontOrder returns the next order eligible to trade on this side, or
// nil when the side is empty.
func (s *BookSide) frontOrder() *Order {
	lvl, ok := s.best()
	if !ok {
		return nil
	}
	return lvl.front()
}

// applyFill debits qty from the front order of the best level and
// removes the level from the index once it drains.
func (s *BookSide) applyFill(qty int64) {
	lvl, ok := s.best()
	if !ok {
		return
	}
	lvl.applyFill(qty)
	if lvl.empty() {
		s.levels.Delete(lvl)
	}
}

// Empty reports whether the side has no resting orders.
func (s *BookSide) Empty() bool {
	return s.levels.Len() == 0
}

// Depth returns the number of distinct price levels.
func (s *BookSide) Depth() int {
	return s.levels.Len()
}

// Snapshot returns (price, aggregate qty) pairs in priority order, best
// level first. It never mutates the side.
func (s *BookSide) Snapshot() []Level {
	out := make([]Level, 0, s.levels.Len())
	visit := func(lvl *priceLevel) bool {
		out = append(out, Level{Price: lvl.price, Qty: lvl.totalQty})
		return true
	}
	if s.side == Buy {
		s.levels.Descend(visit)
	} else {
		s.levels.Ascend(visit)
	}
	return out
}
