package tick

import (
	"math"
	"regexp"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DefaultSize is the reference market tick: 0.001.
var DefaultSize = decimal.New(1, -3)

// ErrInvalidPrice signals a price that is non-numeric, non-positive, or
// below one tick.
var ErrInvalidPrice = errors.New("price must be a positive value of at least one tick")

// priceRe accepts plain non-negative decimals only. No signs, no exponents:
// everything decimal.NewFromString would tolerate beyond this grammar is
// rejected at the boundary.
var priceRe = regexp.MustCompile(`^[0-9]*\.?[0-9]+$`)

// Quantizer converts decimal price text into an exact integer tick count.
// All downstream price comparisons are integer comparisons; float math
// never touches a price after this point.
type Quantizer struct {
	size   decimal.Decimal
	places int32 // decimal places of the tick size, for formatting
}

// NewQuantizer builds a Quantizer for the given tick size.
func NewQuantizer(size decimal.Decimal) (*Quantizer, error) {
	if !size.IsPositive() {
		return nil, errors.Errorf("tick size must be positive, got %s", size)
	}
	var places int32
	if size.Exponent() < 0 {
		places = -size.Exponent()
	}
	return &Quantizer{size: size, places: places}, nil
}

// Size returns the configured tick size.
func (q *Quantizer) Size() decimal.Decimal { return q.size }

// Quantize parses raw price text and returns floor(price / tick size).
// The division is exact integer decimal arithmetic via QuoRem.
func (q *Quantizer) Quantize(raw string) (int64, error) {
	if !priceRe.MatchString(raw) {
		return 0, ErrInvalidPrice
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	ticks, _ := price.QuoRem(q.size, 0)
	if ticks.Cmp(decimal.New(1, 0)) < 0 {
		// Zero or sub-tick price. Covers raw "0" and "0.0004" alike.
		return 0, ErrInvalidPrice
	}
	if ticks.Cmp(decimal.NewFromInt(math.MaxInt64)) > 0 {
		return 0, ErrInvalidPrice
	}
	return ticks.IntPart(), nil
}

// Format renders a tick count back to price text at tick precision,
// e.g. 10000 ticks at size 0.001 -> "10.000".
func (q *Quantizer) Format(ticks int64) string {
	return decimal.NewFromInt(ticks).Mul(q.size).StringFixed(q.places)
}
