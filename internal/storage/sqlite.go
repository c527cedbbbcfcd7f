// Package storage provides SQLite-based persistence for the local
// leaderboard and the game history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/neon-snake/internal/leaderboard"
)

// ErrDuplicateGame is returned when a session is recorded twice.
var ErrDuplicateGame = errors.New("storage: game already recorded")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished session.
type GameRecord struct {
	ID        int64
	SessionID string
	Score     int
	Length    int
	Ticks     int
	EndReason string // "wall", "self"
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats aggregates the game history.
type Stats struct {
	Games     int
	BestScore int
	AvgScore  float64
	Longest   int
	TotalTime time.Duration
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL DEFAULT 0,
			length INTEGER NOT NULL DEFAULT 1,
			ticks INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SubmitScore records a named score.
func (s *Store) SubmitScore(ctx context.Context, name string, score int) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO scores (player_name, score) VALUES (?, ?)",
		name, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// TopScores retrieves the top N scores ordered by score descending.
// Ties keep insertion order.
func (s *Store) TopScores(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	if limit <= 0 {
		limit = leaderboard.DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT player_name, score, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []leaderboard.Entry
	for rows.Next() {
		var e leaderboard.Entry
		var createdAt any
		if err := rows.Scan(&e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best submitted score, or 0 if there are none.
func (s *Store) HighScore(ctx context.Context) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRowContext(ctx, "SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes every leaderboard row.
func (s *Store) ClearScores(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// RecordGame stores a finished session. Recording the same session twice
// returns ErrDuplicateGame.
func (s *Store) RecordGame(ctx context.Context, rec GameRecord) (int64, error) {
	prev, err := s.gameBySession(ctx, rec.SessionID)
	if err != nil {
		return 0, err
	}
	if prev != nil {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateGame, rec.SessionID)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO games (session_id, score, length, ticks, end_reason, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.SessionID,
		rec.Score,
		rec.Length,
		rec.Ticks,
		rec.EndReason,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// gameBySession retrieves a game by its session ID. It returns nil, nil
// when no such game exists.
func (s *Store) gameBySession(ctx context.Context, sessionID string) (*GameRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, session_id, score, length, ticks, end_reason, duration_ms, created_at
		 FROM games
		 WHERE session_id = ?`,
		sessionID,
	)

	rec, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	return rec, nil
}

// RecentGames retrieves the most recent games, newest first.
func (s *Store) RecentGames(ctx context.Context, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, score, length, ticks, end_reason, duration_ms, created_at
		 FROM games
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		games = append(games, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// GameStats aggregates the whole game history.
func (s *Store) GameStats(ctx context.Context) (Stats, error) {
	var (
		st      Stats
		best    sql.NullInt64
		avg     sql.NullFloat64
		longest sql.NullInt64
		total   sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MAX(score), AVG(score), MAX(length), SUM(duration_ms) FROM games`,
	).Scan(&st.Games, &best, &avg, &longest, &total)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	st.BestScore = int(best.Int64)
	st.AvgScore = avg.Float64
	st.Longest = int(longest.Int64)
	st.TotalTime = time.Duration(total.Int64) * time.Millisecond
	return st, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(sc scanner) (*GameRecord, error) {
	var (
		rec        GameRecord
		durationMs int64
		createdAt  any
	)
	if err := sc.Scan(
		&rec.ID,
		&rec.SessionID,
		&rec.Score,
		&rec.Length,
		&rec.Ticks,
		&rec.EndReason,
		&durationMs,
		&createdAt,
	); err != nil {
		return nil, err
	}
	rec.Duration = time.Duration(durationMs) * time.Millisecond
	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}

// parseTime handles both time.Time and the string form SQLite stores
// CURRENT_TIMESTAMP as.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var _ leaderboard.Sink = (*Store)(nil)
