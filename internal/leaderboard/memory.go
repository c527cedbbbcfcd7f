package leaderboard

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Memory is an in-process Sink for the "memory" backend: scores last as
// long as the process, which suits a throwaway SSH server.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

// NewMemory creates an empty in-memory leaderboard.
func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

// SubmitScore appends an entry.
func (m *Memory) SubmitScore(_ context.Context, name string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{Name: name, Score: score, CreatedAt: m.now()})
	return nil
}

// TopScores returns the best entries, highest score first. Ties keep
// submission order.
func (m *Memory) TopScores(_ context.Context, limit int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sorted := make([]Entry, len(m.entries))
	copy(sorted, m.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

var _ Sink = (*Memory)(nil)
