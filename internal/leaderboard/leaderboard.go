// Package leaderboard defines the score sink contract shared by the local
// SQLite store and the hosted REST backend, and the Board view-model that
// keeps the latest top-scores list for display.
package leaderboard

import (
	"context"
	"time"
)

// DefaultLimit is the number of entries shown on the board.
const DefaultLimit = 10

// Entry is one leaderboard row.
type Entry struct {
	Name      string
	Score     int
	CreatedAt time.Time
}

// Sink stores and ranks scores.
type Sink interface {
	// SubmitScore records a finished game.
	SubmitScore(ctx context.Context, name string, score int) error

	// TopScores returns at most limit entries ordered by score, highest first.
	TopScores(ctx context.Context, limit int) ([]Entry, error)
}
