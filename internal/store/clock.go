package store

import "sync/atomic"

// Clock stamps rows with a monotonic logical sequence number.
type Clock interface {
	Next() int64
}

// SeqClock is the default Clock. It resumes after the highest seq already
// in the database so numbering stays monotonic across processes.
//
// Thread-safety: SeqClock is safe for concurrent use (atomic operations).
type SeqClock struct {
	seq atomic.Int64
}

// NewSeqClockAt creates a clock whose next value is start+1.
func NewSeqClockAt(start int64) *SeqClock {
	c := &SeqClock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number.
func (c *SeqClock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the last issued sequence number.
func (c *SeqClock) Current() int64 {
	return c.seq.Load()
}
