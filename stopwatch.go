package minprof

import "time"

// Stopwatch is a manual measurement helper bound to one Timer. Start
// opens an interval; Split retires it into the Timer and keeps
// measuring; Stop retires it and goes idle. It is the explicit,
// unchecked primitive; prefer Scopewatch where a scope boundary fits.
//
// A Stopwatch must not be shared between goroutines. The bound Timer
// may be: goroutines measuring the same Timer each get their own
// Stopwatch.
type Stopwatch struct {
	t     Timer
	start time.Time
}

// NewStopwatch binds an idle Stopwatch to t.
func NewStopwatch(t Timer) *Stopwatch {
	return &Stopwatch{t: t}
}

// Start opens a measurement. Starting a running Stopwatch silently
// abandons the open interval.
func (s *Stopwatch) Start() {
	s.start = time.Now()
}

// Running reports whether a measurement is open.
func (s *Stopwatch) Running() bool {
	return !s.start.IsZero()
}

// Split retires the elapsed interval into the bound Timer and keeps
// measuring from the same instant, so consecutive splits lose no time.
// It returns the retired interval.
//
// Splitting an idle Stopwatch is a caller bug: debug and race builds
// panic, release builds retire an interval measured from the zero
// time.
func (s *Stopwatch) Split() time.Duration {
	if isDebugBuild() && !s.Running() {
		panic("minprof: Split on an idle Stopwatch")
	}
	now := time.Now()
	d := now.Sub(s.start)
	s.t.Add(d)
	s.start = now
	return d
}

// Stop retires the elapsed interval into the bound Timer and leaves
// the Stopwatch idle. Same caller contract as Split.
func (s *Stopwatch) Stop() time.Duration {
	d := s.Split()
	s.start = time.Time{}
	return d
}
