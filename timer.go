package minprof

import "time"

// Timer is a Counter whose value is read as an accumulated duration in
// nanoseconds. It is a view, not a distinct storage type: a Timer and
// the Counter it wraps share one slot, so the same registered name can
// be used as either without splitting its identity.
type Timer struct {
	c *Counter
}

// AsTimer reinterprets a Counter as a Timer over the same storage.
func AsTimer(c *Counter) Timer { return Timer{c: c} }

// Counter returns the underlying Counter.
func (t Timer) Counter() *Counter { return t.c }

// Add accumulates d into the timer. d must not be negative: debug and
// race builds panic on a negative duration, release builds wrap around
// on the uint64 conversion and the stored total becomes garbage.
func (t Timer) Add(d time.Duration) {
	if isDebugBuild() && d < 0 {
		panic("minprof: negative duration added to Timer")
	}
	t.c.Add(uint64(d))
}

// Value returns the accumulated duration.
func (t Timer) Value() time.Duration {
	return time.Duration(t.c.Value())
}
