package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/uhyunpark/matchbook/pkg/book"
	"github.com/uhyunpark/matchbook/pkg/tick"
)

// DefaultColumnWidth matches the reference display.
const DefaultColumnWidth = 15

// Renderer produces the two-column book view and trade lines. It only
// reads level snapshots; engine state is never touched.
type Renderer struct {
	width     int
	quantizer *tick.Quantizer
}

func New(q *tick.Quantizer, width int) *Renderer {
	if width <= 0 {
		width = DefaultColumnWidth
	}
	return &Renderer{width: width, quantizer: q}
}

// TradeLine formats a single execution as <quantity>@<price>, price at
// tick precision.
func (r *Renderer) TradeLine(t book.Trade) string {
	return fmt.Sprintf("%d@%s", t.Qty, r.quantizer.Format(t.Price))
}

// WriteTrades writes one line per trade, in execution order.
func (r *Renderer) WriteTrades(w io.Writer, trades []book.Trade) error {
	for _, t := range trades {
		if _, err := fmt.Fprintln(w, r.TradeLine(t)); err != nil {
			return err
		}
	}
	return nil
}

// WriteBook writes the header and one row per price level: bid column
// left (best bid first, left-aligned), ask column right (best ask
// first, right-aligned), separated by '|'. The shorter side gets blank
// cells until both sequences are exhausted.
func (r *Renderer) WriteBook(w io.Writer, bids, asks []book.Level) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s|%*s\n", r.width, "BUY", r.width, "SELL")

	rows := len(bids)
	if len(asks) > rows {
		rows = len(asks)
	}
	for i := 0; i < rows; i++ {
		left, right := "", ""
		if i < len(bids) {
			left = r.cell(bids[i])
		}
		if i < len(asks) {
			right = r.cell(asks[i])
		}
		fmt.Fprintf(&sb, "%-*s|%*s\n", r.width, left, r.width, right)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *Renderer) cell(lvl book.Level) string {
	return fmt.Sprintf("%d@%s", lvl.Qty, r.quantizer.Format(lvl.Price))
}
