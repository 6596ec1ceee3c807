package book

type Side int8

const (
	Buy  Side = 1
	Sell Side = -1
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	}
	return "unknown"
}

// ParseSide maps an input token to a Side. "B" and "S" are the only
// recognized tokens.
func ParseSide(tok string) (Side, bool) {
	switch tok {
	case "B":
		return Buy, true
	case "S":
		return Sell, true
	}
	return 0, false
}

// Order is one accepted submission resting in the book. Price is an
// integer tick count and never changes; Qty is decremented as fills are
// applied. Seq is assigned by the caller and strictly increases across
// accepted orders of both sides.
type Order struct {
	Side  Side
	Qty   int64
	Price int64 // integer ticks
	Seq   uint64
}

// Trade is one execution produced by the matching sweep.
type Trade struct {
	Qty   int64
	Price int64 // integer ticks
}

// Level is the aggregate view of one price level, as exposed to the
// renderer.
type Level struct {
	Price int64 // integer ticks
	Qty   int64 // total resting quantity at this price
}
