package tests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhyunpark/matchbook/pkg/book"
	"github.com/uhyunpark/matchbook/pkg/render"
	"github.com/uhyunpark/matchbook/pkg/tick"
	"github.com/uhyunpark/matchbook/pkg/util"
)

type session struct {
	engine   *book.Engine
	renderer *render.Renderer
	seq      *util.Counter
}

func newSession(t *testing.T) *session {
	t.Helper()
	q, err := tick.NewQuantizer(tick.DefaultSize)
	require.NoError(t, err)
	return &session{
		engine:   book.NewEngine(q),
		renderer: render.New(q, render.DefaultColumnWidth),
		seq:      &util.Counter{},
	}
}

// submit runs one submission through the full pipeline and returns what
// would be printed for it: trade lines followed by the book rendering.
func (s *session) submit(t *testing.T, side, qty, price string) (string, error) {
	t.Helper()
	trades, err := s.engine.Submit(side, qty, price, s.seq.Next())
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	require.NoError(t, s.renderer.WriteTrades(&sb, trades))
	require.NoError(t, s.renderer.WriteBook(&sb, s.engine.Bids().Snapshot(), s.engine.Asks().Snapshot()))
	return sb.String(), nil
}

func TestSessionExactCross(t *testing.T) {
	s := newSession(t)

	out, err := s.submit(t, "B", "10", "10.000")
	require.NoError(t, err)
	assert.Equal(t,
		"BUY            |           SELL\n"+
			"10@10.000      |               \n",
		out)

	out, err = s.submit(t, "S", "10", "10.000")
	require.NoError(t, err)
	assert.Equal(t,
		"10@10.000\n"+
			"BUY            |           SELL\n",
		out)
}

func TestSessionRestingPriceWins(t *testing.T) {
	s := newSession(t)

	_, err := s.submit(t, "B", "5", "10.000")
	require.NoError(t, err)

	out, err := s.submit(t, "S", "3", "9.000")
	require.NoError(t, err)
	assert.Equal(t,
		"3@10.000\n"+
			"BUY            |           SELL\n"+
			"2@10.000       |               \n",
		out)
}

func TestSessionFIFOSweep(t *testing.T) {
	s := newSession(t)

	_, err := s.submit(t, "B", "4", "9.999")
	require.NoError(t, err)
	_, err = s.submit(t, "B", "6", "9.999")
	require.NoError(t, err)

	out, err := s.submit(t, "S", "10", "9.000")
	require.NoError(t, err)
	assert.Equal(t,
		"4@9.999\n"+
			"6@9.999\n"+
			"BUY            |           SELL\n",
		out)
}

func TestSessionNoCross(t *testing.T) {
	s := newSession(t)

	_, err := s.submit(t, "S", "5", "5.000")
	require.NoError(t, err)

	out, err := s.submit(t, "B", "3", "4.000")
	require.NoError(t, err)
	assert.Equal(t,
		"BUY            |           SELL\n"+
			"3@4.000        |        5@5.000\n",
		out)
}

func TestSessionRejectionLeavesBookAlone(t *testing.T) {
	s := newSession(t)

	before, err := s.submit(t, "B", "5", "10.000")
	require.NoError(t, err)

	_, err = s.submit(t, "B", "0", "10.000")
	require.ErrorIs(t, err, book.ErrInvalidQuantity)

	// Re-render: byte-for-byte identical to before the rejection.
	var sb strings.Builder
	require.NoError(t, s.renderer.WriteBook(&sb, s.engine.Bids().Snapshot(), s.engine.Asks().Snapshot()))
	assert.Equal(t, before, sb.String())
}

func TestSessionDeepBook(t *testing.T) {
	s := newSession(t)

	_, err := s.submit(t, "B", "10", "10.000")
	require.NoError(t, err)
	_, err = s.submit(t, "B", "7", "9.500")
	require.NoError(t, err)
	_, err = s.submit(t, "B", "2", "9.500")
	require.NoError(t, err)
	_, err = s.submit(t, "S", "9", "10.500")
	require.NoError(t, err)

	out, err := s.submit(t, "S", "6", "10.250")
	require.NoError(t, err)
	assert.Equal(t,
		"BUY            |           SELL\n"+
			"10@10.000      |       6@10.250\n"+
			"9@9.500        |       9@10.500\n",
		out)
}
