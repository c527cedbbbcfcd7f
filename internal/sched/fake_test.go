package sched

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFakeEveryFiresOnPeriod(t *testing.T) {
	f := NewFake()
	count := 0
	f.Every(100*time.Millisecond, func() { count++ })

	f.Advance(99 * time.Millisecond)
	if count != 0 {
		t.Fatalf("fired early: count = %d", count)
	}

	f.Advance(1 * time.Millisecond)
	if count != 1 {
		t.Fatalf("count = %d after one period, expected 1", count)
	}

	f.Advance(350 * time.Millisecond)
	if count != 4 {
		t.Errorf("count = %d after 450ms, expected 4", count)
	}
}

func TestFakeCancelStopsTimer(t *testing.T) {
	f := NewFake()
	count := 0
	var h Handle
	h = f.Every(10*time.Millisecond, func() {
		count++
		if count == 3 {
			h.Cancel()
		}
	})

	f.Advance(time.Second)
	if count != 3 {
		t.Errorf("count = %d, expected timer to stop itself after 3", count)
	}
	if f.Active() != 0 {
		t.Errorf("Active() = %d, expected 0", f.Active())
	}

	// Idempotent
	h.Cancel()
}

func TestFakeTickOrdering(t *testing.T) {
	f := NewFake()
	var order []string
	f.Every(20*time.Millisecond, func() { order = append(order, "slow") })
	f.Every(10*time.Millisecond, func() { order = append(order, "fast") })

	f.Advance(20 * time.Millisecond)

	expected := []string{"fast", "slow", "fast"}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("order = %v, expected %v", order, expected)
			break
		}
	}
}

func TestFakeTickAdvancesToNextDeadline(t *testing.T) {
	f := NewFake()
	count := 0
	f.Every(100*time.Millisecond, func() { count++ })

	f.Tick()
	f.Tick()
	if count != 2 {
		t.Errorf("count = %d, expected 2", count)
	}
	if f.Now() != 200*time.Millisecond {
		t.Errorf("Now() = %v, expected 200ms", f.Now())
	}
}

func TestFakeDispatcherDefersUntilFlush(t *testing.T) {
	f := NewFake()
	boom := errors.New("boom")

	var got error
	called := false
	f.Go(func(context.Context) error { return boom }, func(err error) {
		called = true
		got = err
	})

	if called {
		t.Fatal("done ran before Flush")
	}
	if f.Pending() != 1 {
		t.Fatalf("Pending() = %d, expected 1", f.Pending())
	}

	f.Flush()
	if !called || !errors.Is(got, boom) {
		t.Errorf("done called = %v with %v, expected boom", called, got)
	}
}

func TestFakeFlushRunsChainedJobs(t *testing.T) {
	f := NewFake()
	steps := 0
	f.Go(func(context.Context) error { return nil }, func(error) {
		steps++
		f.Go(func(context.Context) error { return nil }, func(error) { steps++ })
	})

	f.Flush()
	if steps != 2 {
		t.Errorf("steps = %d, expected chained job to run", steps)
	}
}
