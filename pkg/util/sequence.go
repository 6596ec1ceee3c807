package util

// Sequence hands out the strictly increasing sequence numbers the
// engine expects on every submission. How a caller produces them (wall
// clock, counter) is its own business; Counter is the simple default.
type Sequence interface {
	Next() uint64
}

// Counter is a monotonic in-process sequence starting at 1.
type Counter struct {
	n uint64
}

func (c *Counter) Next() uint64 {
	c.n++
	return c.n
}

// Current returns the last issued sequence number.
func (c *Counter) Current() uint64 {
	return c.n
}
