// Package sched defines the timing and async capabilities the game loop is
// driven by. Implementations deliver every callback on a single event queue,
// so callers never need locking.
package sched

import (
	"context"
	"time"
)

// Handle cancels a recurring callback. Cancel is idempotent.
type Handle interface {
	Cancel()
}

// Scheduler runs fn every period until the returned handle is cancelled.
type Scheduler interface {
	Every(period time.Duration, fn func()) Handle
}

// Dispatcher runs work off the event queue and delivers done back on it.
// done is never called concurrently with other queued callbacks.
type Dispatcher interface {
	Go(work func(ctx context.Context) error, done func(err error))
}

// HandleFunc adapts a plain function to the Handle interface.
type HandleFunc func()

// Cancel calls f.
func (f HandleFunc) Cancel() {
	f()
}
