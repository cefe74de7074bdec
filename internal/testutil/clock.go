package testutil

import "sync"

// DeterministicClock hands out history seq values 1, 2, 3, ... in call order.
//
// It satisfies store.Clock. Store tests open a database with it so the seq
// stamped on each solve, optimizer run and generation is known in advance,
// and optimizer tests use it to check the order StoreObserver writes in.
// Safe for concurrent use.
type DeterministicClock struct {
	mu  sync.Mutex
	seq int64
}

// NewDeterministicClock returns a clock whose first Next is 1.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{}
}

// Next returns the seq for the next history row.
func (c *DeterministicClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the last seq handed out, or 0 before the first Next.
func (c *DeterministicClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset starts the sequence over, as for a fresh database.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
