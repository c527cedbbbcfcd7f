package leaderboard

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/sched"
)

type failingSink struct {
	err error
}

func (f failingSink) SubmitScore(context.Context, string, int) error { return f.err }

func (f failingSink) TopScores(context.Context, int) ([]Entry, error) { return nil, f.err }

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestBoardRefreshLoadsEntries(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()
	for _, s := range []int{5, 30, 12} {
		if err := mem.SubmitScore(ctx, "p", s); err != nil {
			t.Fatalf("SubmitScore() failed: %v", err)
		}
	}

	clock := sched.NewFake()
	b := NewBoard(mem, clock, 2, quietLogger())

	b.Refresh()
	if !b.Loading() {
		t.Error("Loading() should be true while the query is in flight")
	}

	clock.Flush()
	if b.Loading() || !b.Loaded() {
		t.Fatal("board should be loaded after Flush")
	}

	entries := b.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() has %d rows, expected limit 2", len(entries))
	}
	if entries[0].Score != 30 || entries[1].Score != 12 {
		t.Errorf("entries = %+v, expected 30 then 12", entries)
	}
}

func TestBoardRefreshFailureKeepsOldEntries(t *testing.T) {
	mem := NewMemory()
	_ = mem.SubmitScore(context.Background(), "p", 7)

	clock := sched.NewFake()
	b := NewBoard(mem, clock, 10, quietLogger())
	b.Refresh()
	clock.Flush()

	boom := errors.New("network down")
	b.sink = failingSink{err: boom}
	b.Refresh()
	clock.Flush()

	if !errors.Is(b.Err(), boom) {
		t.Errorf("Err() = %v, expected network error", b.Err())
	}
	if len(b.Entries()) != 1 {
		t.Error("failed refresh should keep the previous entries")
	}
}

func TestBoardKeepsNewestRefresh(t *testing.T) {
	mem := NewMemory()
	clock := sched.NewFake()
	b := NewBoard(mem, clock, 10, quietLogger())

	b.Refresh()
	_ = mem.SubmitScore(context.Background(), "late", 99)
	b.Refresh()
	clock.Flush()

	entries := b.Entries()
	if len(entries) != 1 || entries[0].Name != "late" {
		t.Errorf("entries = %+v, expected result of the newest refresh", entries)
	}
}

func TestBoardWithoutSink(t *testing.T) {
	clock := sched.NewFake()
	b := NewBoard(nil, clock, 0, nil)

	b.Refresh()
	if clock.Pending() != 0 {
		t.Error("board without sink should not dispatch work")
	}
	if b.Available() {
		t.Error("Available() should be false without a sink")
	}
	if b.limit != DefaultLimit {
		t.Errorf("limit = %d, expected default %d", b.limit, DefaultLimit)
	}
}

func TestMemoryTopScoresOrder(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()
	_ = mem.SubmitScore(ctx, "a", 10)
	_ = mem.SubmitScore(ctx, "b", 20)
	_ = mem.SubmitScore(ctx, "c", 10)

	got, err := mem.TopScores(ctx, 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	want := []string{"b", "a", "c"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("order = %+v, expected %v", got, want)
		}
	}
}
