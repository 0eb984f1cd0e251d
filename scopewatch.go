package minprof

import "github.com/tevino/abool/v2"

// Suffixes conventionally distinguishing the two metrics a Section
// maintains under one base name.
const (
	CountSuffix = "|C"
	TimeSuffix  = "|T"
)

// Scopewatch times one scope: it starts measuring when constructed and
// retires the elapsed time into the bound Timer exactly once when
// stopped, however the scope is left:
//
//	sw := minprof.NewScopewatch(t)
//	defer sw.Stop()
//
// Stop is guarded by an atomic flag, so pairing a defer with an
// earlier manual Stop (or a Stop on a panicking path) never retires
// twice. A Scopewatch is bound to the goroutine that created it; do
// not hand one to another goroutine.
type Scopewatch struct {
	sw      Stopwatch
	stopped *abool.AtomicBool
}

// NewScopewatch binds a started Scopewatch to t.
func NewScopewatch(t Timer) *Scopewatch {
	s := &Scopewatch{sw: Stopwatch{t: t}, stopped: abool.New()}
	s.sw.Start()
	return s
}

// Stop retires the elapsed time into the bound Timer. Only the first
// call does anything.
func (s *Scopewatch) Stop() {
	if s.stopped.SetToIf(false, true) {
		s.sw.Stop()
	}
}

// Timed times a block against the process-wide timer for name:
//
//	defer minprof.Timed("load|T")()
func Timed(name string) func() {
	return NewScopewatch(GetTimer(name)).Stop
}

// Section tracks a block under two correlated metrics: how many times
// it was entered and the total time spent inside. The invocation
// counter is incremented exactly once, before timing starts.
type Section struct {
	Scopewatch
}

// NewSection increments c and binds a started Section to t.
func NewSection(c *Counter, t Timer) *Section {
	c.Inc()
	s := &Section{Scopewatch{sw: Stopwatch{t: t}, stopped: abool.New()}}
	s.sw.Start()
	return s
}

// EnterSection enters the process-wide section named name, maintaining
// name|C (entries) and name|T (total time inside):
//
//	defer minprof.EnterSection("parse")()
func EnterSection(name string) func() {
	return NewSection(GetCounter(name+CountSuffix), GetTimer(name+TimeSuffix)).Stop
}
