package leaderboard

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/sched"
)

// Board caches the latest top-scores list. Refresh runs the query through a
// dispatcher, so Board itself is only touched from the event queue.
type Board struct {
	sink       Sink
	dispatcher sched.Dispatcher
	limit      int
	logger     *log.Logger

	entries  []Entry
	err      error
	loading  bool
	loaded   bool
	inFlight int
}

// NewBoard creates a board over sink. A nil sink yields a board that never
// loads (no backend configured).
func NewBoard(sink Sink, dispatcher sched.Dispatcher, limit int, logger *log.Logger) *Board {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Board{
		sink:       sink,
		dispatcher: dispatcher,
		limit:      limit,
		logger:     logger,
	}
}

// Refresh requests a fresh top-scores list. Only the newest request's result
// is kept when several are in flight.
func (b *Board) Refresh() {
	if b.sink == nil || b.dispatcher == nil {
		return
	}

	b.inFlight++
	ticket := b.inFlight
	b.loading = true

	var entries []Entry
	b.dispatcher.Go(
		func(ctx context.Context) error {
			var err error
			entries, err = b.sink.TopScores(ctx, b.limit)
			return err
		},
		func(err error) {
			if ticket != b.inFlight {
				return
			}
			b.loading = false
			b.loaded = true
			if err != nil {
				b.logger.Error("fetching scores failed", "error", err)
				b.err = err
				return
			}
			b.err = nil
			b.entries = entries
		},
	)
}

// Entries returns the last successfully fetched list.
func (b *Board) Entries() []Entry {
	return b.entries
}

// Err returns the error from the last refresh, if it failed.
func (b *Board) Err() error {
	return b.err
}

// Loading reports whether a refresh is in flight.
func (b *Board) Loading() bool {
	return b.loading
}

// Loaded reports whether at least one refresh has completed.
func (b *Board) Loaded() bool {
	return b.loaded
}

// Available reports whether the board has a backend at all.
func (b *Board) Available() bool {
	return b.sink != nil
}
