package minprof

import "testing"

// Package-level functions share one process-wide registry; tests here
// use names no other test touches.

func TestDefault_SameRegistry(t *testing.T) {
	if Default() != Default() {
		t.Fatal("expected Default to return one process-wide instance")
	}
}

func TestGetCounter_SameInstance(t *testing.T) {
	a := GetCounter("global_test_counter")
	b := GetCounter("global_test_counter")
	if a != b {
		t.Fatalf("expected one instance; got %p and %p", a, b)
	}
}

func TestEvent(t *testing.T) {
	before := GetCounter("global_test_event").Value()
	Event("global_test_event")
	Event("global_test_event")
	if got := GetCounter("global_test_event").Value(); got != before+2 {
		t.Fatalf("expected value %d; got %d", before+2, got)
	}
}

func TestGlobalLookups(t *testing.T) {
	c := GetCounter("global_test_lookup")
	idx, ok := Find("global_test_lookup")
	if !ok {
		t.Fatal("expected name to be found")
	}
	if name, ok := NameAt(idx); !ok || name != "global_test_lookup" {
		t.Fatalf("NameAt(%d): expected global_test_lookup; got %q (%v)", idx, name, ok)
	}
	if CounterAt(idx) != c {
		t.Fatalf("CounterAt(%d): expected the resolved instance", idx)
	}
	if Count() < 1 {
		t.Fatalf("expected at least one registration; got %d", Count())
	}
	if _, ok := Find("global_test_never_registered"); ok {
		t.Fatal("expected unknown name to be absent")
	}
}
