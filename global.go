package minprof

import "sync"

// The process-wide default registry. It is created lazily on first
// use, lives until process exit and is never torn down; there is no
// API to clear or replace it. Code that wants isolation (tests,
// embedded libraries) constructs its own Registry with New.
var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry, creating it on first
// call.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
	})
	return defaultReg
}

// GetCounter returns the process-wide counter for name, creating it on
// first use. Resolving at package variable initialization registers
// the name before main runs:
//
//	var nRequests = minprof.GetCounter("requests|C")
func GetCounter(name string, opts ...CounterOption) *Counter {
	return Default().Counter(name, opts...)
}

// GetTimer returns the process-wide counter for name viewed as a
// Timer.
func GetTimer(name string, opts ...CounterOption) Timer {
	return Default().Timer(name, opts...)
}

// Event increments the process-wide counter for name by 1.
func Event(name string) {
	Default().Counter(name).Inc()
}

// Find reports the registration index of name in the default registry.
func Find(name string) (int, bool) { return Default().Find(name) }

// NameAt returns the name at index i of the default registry.
func NameAt(i int) (string, bool) { return Default().Name(i) }

// CounterAt returns the counter at index i of the default registry, or
// nil when i is out of range.
func CounterAt(i int) *Counter { return Default().At(i) }

// Count returns the number of names in the default registry.
func Count() int { return Default().Count() }
