package minprof

import (
	"testing"
	"time"
)

func TestScopewatch_RetiresAtLeastElapsed(t *testing.T) {
	var c Counter
	start := time.Now()
	sw := NewScopewatch(AsTimer(&c))
	time.Sleep(10 * time.Millisecond)
	sw.Stop()
	elapsed := time.Since(start)

	got := AsTimer(&c).Value()
	if got < 10*time.Millisecond {
		t.Fatalf("expected timer >= 10ms; got %v", got)
	}
	if got > elapsed {
		t.Fatalf("expected timer <= wall-clock bound %v; got %v", elapsed, got)
	}
}

func TestScopewatch_StopIsIdempotent(t *testing.T) {
	var c Counter
	sw := NewScopewatch(AsTimer(&c))
	sw.Stop()
	first := AsTimer(&c).Value()
	sw.Stop()
	sw.Stop()
	if got := AsTimer(&c).Value(); got != first {
		t.Fatalf("second Stop retired time: %v then %v", first, got)
	}
}

func TestScopewatch_RetiresOnPanicPath(t *testing.T) {
	var c Counter
	func() {
		defer func() { recover() }()
		sw := NewScopewatch(AsTimer(&c))
		defer sw.Stop()
		panic("unwound")
	}()
	if AsTimer(&c).Value() == 0 {
		t.Fatal("expected elapsed time to be retired on the panic path")
	}
}

func TestTimed(t *testing.T) {
	func() {
		defer Timed("scopewatch_test_timed|T")()
		time.Sleep(2 * time.Millisecond)
	}()
	if got := GetTimer("scopewatch_test_timed|T").Value(); got < 2*time.Millisecond {
		t.Fatalf("expected at least 2ms retired; got %v", got)
	}
}

func TestSection_CountsExactlyOncePerEntry(t *testing.T) {
	const entries = 1000
	cName := "scopewatch_test_section" + CountSuffix
	tName := "scopewatch_test_section" + TimeSuffix

	before := GetCounter(cName).Value()
	for i := 0; i < entries; i++ {
		func() {
			defer EnterSection("scopewatch_test_section")()
		}()
	}

	if got := GetCounter(cName).Value(); got != before+entries {
		t.Fatalf("expected counter to grow by exactly %d; got %d", entries, got-before)
	}
	if GetTimer(tName).Value() == 0 {
		t.Fatal("expected total section time to be nonzero")
	}
}

func TestNewSection_SharesNothingWithScope(t *testing.T) {
	var count, total Counter
	s := NewSection(&count, AsTimer(&total))
	if got := count.Value(); got != 1 {
		t.Fatalf("expected entry counter incremented on construction; got %d", got)
	}
	s.Stop()
	s.Stop()
	if count.Value() != 1 {
		t.Fatalf("expected Stop to leave the entry counter alone; got %d", count.Value())
	}
	if total.Value() == 0 {
		t.Fatal("expected section time to be retired")
	}
}
