package minprof

import (
	"testing"
	"time"
)

func TestStopwatch_StopRetires(t *testing.T) {
	var c Counter
	sw := NewStopwatch(AsTimer(&c))

	sw.Start()
	time.Sleep(10 * time.Millisecond)
	d := sw.Stop()

	if d < 10*time.Millisecond {
		t.Fatalf("expected measured interval >= 10ms; got %v", d)
	}
	if got := AsTimer(&c).Value(); got != d {
		t.Fatalf("expected timer to hold exactly the retired interval %v; got %v", d, got)
	}
	if sw.Running() {
		t.Fatal("expected stopwatch to be idle after Stop")
	}
}

func TestStopwatch_SplitKeepsRunning(t *testing.T) {
	var c Counter
	sw := NewStopwatch(AsTimer(&c))

	sw.Start()
	time.Sleep(5 * time.Millisecond)
	d1 := sw.Split()
	if !sw.Running() {
		t.Fatal("expected stopwatch to keep running after Split")
	}
	time.Sleep(5 * time.Millisecond)
	d2 := sw.Stop()

	if got := AsTimer(&c).Value(); got != d1+d2 {
		t.Fatalf("expected timer to hold %v; got %v", d1+d2, got)
	}
}

func TestStopwatch_RestartAbandonsInterval(t *testing.T) {
	var c Counter
	sw := NewStopwatch(AsTimer(&c))

	sw.Start()
	time.Sleep(50 * time.Millisecond)
	sw.Start() // abandons the open interval
	d := sw.Stop()

	if d >= 50*time.Millisecond {
		t.Fatalf("expected restart to abandon the first interval; retired %v", d)
	}
	if got := AsTimer(&c).Value(); got != d {
		t.Fatalf("expected timer to hold only the second interval %v; got %v", d, got)
	}
}

func TestStopwatch_IdleSplitAsserts(t *testing.T) {
	if !isDebugBuild() {
		t.Skip("idle-use assertion is active only in debug and race builds")
	}
	var c Counter
	sw := NewStopwatch(AsTimer(&c))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic splitting an idle Stopwatch")
		}
	}()
	sw.Split()
}
