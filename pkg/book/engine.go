package book

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"github.com/uhyunpark/matchbook/pkg/tick"
)

var (
	// ErrInvalidSide rejects any side token other than "B" or "S".
	ErrInvalidSide = errors.New("side must be either 'B' or 'S'")
	// ErrInvalidQuantity rejects quantities that are not positive
	// integers (leading zeros included).
	ErrInvalidQuantity = errors.New("order quantity must be a positive integer")
)

// qtyRe: positive integer, no leading zero beyond a single digit.
var qtyRe = regexp.MustCompile(`^[1-9][0-9]*$`)

// Engine orchestrates both book sides: it validates submissions, rests
// them in the correct side, and runs the cross-matching sweep. It holds
// no state beyond the two sides and is single-threaded by contract —
// each Submit runs to completion before the next is accepted.
type Engine struct {
	quantizer *tick.Quantizer
	bids      *BookSide
	asks      *BookSide
}

func NewEngine(q *tick.Quantizer) *Engine {
	return &Engine{
		quantizer: q,
		bids:      newBookSide(Buy),
		asks:      newBookSide(Sell),
	}
}

func (e *Engine) Bids() *BookSide { return e.bids }
func (e *Engine) Asks() *BookSide { return e.asks }

// Submit validates one raw submission, rests it in the book, and sweeps
// until no cross remains. Trades come back in execution order; an empty
// slice means the order rested without crossing. On a validation error
// the book is untouched.
//
// Checks run in fixed order — side, quantity, price — and the first
// failure wins.
func (e *Engine) Submit(sideTok, qtyStr, priceStr string, seq uint64) ([]Trade, error) {
	side, ok := ParseSide(sideTok)
	if !ok {
		return nil, ErrInvalidSide
	}
	if !qtyRe.MatchString(qtyStr) {
		return nil, ErrInvalidQuantity
	}
	qty, err := strconv.ParseInt(qtyStr, 10, 64)
	if err != nil {
		return nil, ErrInvalidQuantity
	}
	price, err := e.quantizer.Quantize(priceStr)
	if err != nil {
		return nil, err
	}

	o := &Order{Side: side, Qty: qty, Price: price, Seq: seq}
	if side == Buy {
		e.bids.insert(o)
	} else {
		e.asks.insert(o)
	}
	return e.sweep(), nil
}

// sweep repeatedly matches the best bid against the best ask until one
// side empties or the best bid no longer covers the best ask. Each
// iteration strictly reduces resting quantity, so termination is
// guaranteed.
func (e *Engine) sweep() []Trade {
	var trades []Trade
	for !e.bids.Empty() && !e.asks.Empty() {
		bid := e.bids.frontOrder()
		ask := e.asks.frontOrder()
		if bid.Price < ask.Price {
			break
		}

		qty := min(bid.Qty, ask.Qty)
		// The order that has been waiting longer sets the execution
		// price: it does not concede on a crossed spread.
		price := bid.Price
		if ask.Seq < bid.Seq {
			price = ask.Price
		}
		trades = append(trades, Trade{Qty: qty, Price: price})

		e.bids.applyFill(qty)
		e.asks.applyFill(qty)
	}
	return trades
}

func min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
