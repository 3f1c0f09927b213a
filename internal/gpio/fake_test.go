package gpio

import (
	"testing"
	"time"
)

func TestFakeFlexLineRecordsOps(t *testing.T) {
	f := &FakeFlexLine{}

	if f.Last() != "" {
		t.Errorf("expected no ops initially, got %q", f.Last())
	}

	f.Float()
	f.DriveHigh()
	f.DriveLow()

	want := []string{"float", "high", "low"}
	if len(f.Ops) != len(want) {
		t.Fatalf("expected %d ops, got %d", len(want), len(f.Ops))
	}
	for i, op := range want {
		if f.Ops[i] != op {
			t.Errorf("op %d: expected %q, got %q", i, op, f.Ops[i])
		}
	}
	if f.Last() != "low" {
		t.Errorf("expected last op low, got %q", f.Last())
	}
}

func TestFakeEdgeWaiterConsumesAndFlushes(t *testing.T) {
	f := &FakeEdgeWaiter{Edges: 3}

	f.WaitForFallingEdge()
	if f.Waits != 1 {
		t.Errorf("expected 1 wait, got %d", f.Waits)
	}
	if f.Edges != 2 {
		t.Errorf("expected 2 latched edges remaining, got %d", f.Edges)
	}

	f.Flush()
	if f.Edges != 0 {
		t.Errorf("expected no latched edges after flush, got %d", f.Edges)
	}
	if f.Flushed != 2 {
		t.Errorf("expected 2 flushed edges, got %d", f.Flushed)
	}
}

func TestLatchingEdgeWaiterLatchesAndFlushes(t *testing.T) {
	l := NewLatchingEdgeWaiter()

	// A latched edge satisfies a later wait.
	l.Press()
	done := make(chan struct{})
	go func() {
		l.WaitForFallingEdge()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("latched edge did not satisfy the wait")
	}

	// Flush discards latched edges.
	l.Press()
	l.Press()
	l.Flush()
	waited := make(chan struct{})
	go func() {
		l.WaitForFallingEdge()
		close(waited)
	}()
	select {
	case <-waited:
		t.Fatal("flushed edge satisfied a wait")
	case <-time.After(20 * time.Millisecond):
	}
	l.Press() // unblock the goroutine
	<-waited
}

func TestFakeOutputLinePulses(t *testing.T) {
	f := &FakeOutputLine{}

	f.Set(true)
	f.Set(false)
	f.Set(true)
	f.Set(false)

	if f.Pulses() != 2 {
		t.Errorf("expected 2 pulses, got %d", f.Pulses())
	}
	if f.Level {
		t.Error("expected level low after last Set")
	}
}
