package minprof

import "sync/atomic"

// Counter is a lock-free, monotonically increasing 64-bit accumulator.
// The zero value is ready for use. All methods are safe for concurrent
// use by any number of goroutines; every mutation is a single atomic
// add, so the final value always equals the exact sum of all
// increments regardless of interleaving.
//
// The interface deliberately rules out decrements, resets and stores:
// a Counter's value never goes down over its lifetime. A Counter's
// identity is its registry slot; share pointers, never copy values.
type Counter struct {
	v atomic.Uint64
}

// Inc adds 1 and returns the value the counter held before the add.
func (c *Counter) Inc() uint64 {
	return c.v.Add(1) - 1
}

// Add increases the counter by n.
func (c *Counter) Add(n uint64) {
	c.v.Add(n)
}

// Value returns the current value. The result may be stale the
// instant it is returned; no consistency with any other counter is
// implied.
func (c *Counter) Value() uint64 {
	return c.v.Load()
}

// Clone returns a new, independent Counter frozen at the current
// value. The clone shares no storage and no identity with c.
func (c *Counter) Clone() *Counter {
	n := &Counter{}
	n.v.Store(c.v.Load())
	return n
}
