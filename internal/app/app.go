// Package app wires configuration into the game's collaborators: the
// leaderboard backend, the local game log, the logger and the cue player.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/audio"
	"github.com/vovakirdan/neon-snake/internal/audio/synth"
	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/leaderboard"
	"github.com/vovakirdan/neon-snake/internal/leaderboard/rest"
	"github.com/vovakirdan/neon-snake/internal/snake"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

// LogFile is where the interactive game writes its log.
const LogFile = "~/.arcade/neon.log"

// Backend bundles the score sink and the optional local game log.
type Backend struct {
	Sink     leaderboard.Sink
	Recorder snake.Recorder
	// Store is the SQLite database, when one is open.
	Store *storage.Store
}

// OpenBackend builds the leaderboard backend described by lb. dbPath, when
// non-empty, overrides lb.DBPath.
//
// The sqlite backend serves both scores and game history. The memory
// backend keeps scores for the life of the process and no history. The rest backend
// sends scores to the hosted table and keeps history in SQLite when a
// database path is configured; failing to open it only disables history.
func OpenBackend(lb config.LeaderboardConfig, dbPath string, logger *log.Logger) (*Backend, error) {
	if logger == nil {
		logger = log.Default()
	}
	if dbPath == "" {
		dbPath = lb.DBPath
	}

	b := &Backend{}
	switch lb.Backend {
	case config.BackendSQLite:
		store, err := storage.Open(dbPath)
		if err != nil {
			return nil, err
		}
		b.Store = store
		b.Sink = store

	case config.BackendREST:
		client, err := rest.New(rest.Config{
			BaseURL: lb.URL,
			APIKey:  lb.APIKey,
			Table:   lb.Table,
			Timeout: lb.Timeout(),
		}, logger.With("backend", "rest"))
		if err != nil {
			return nil, err
		}
		b.Sink = client

		if dbPath != "" {
			store, err := storage.Open(dbPath)
			if err != nil {
				logger.Warn("game history disabled", "error", err)
			} else {
				b.Store = store
			}
		}

	case config.BackendMemory:
		b.Sink = leaderboard.NewMemory()

	case config.BackendNone:

	default:
		return nil, fmt.Errorf("app: unknown leaderboard backend %q", lb.Backend)
	}

	if b.Store != nil {
		b.Recorder = NewRecorder(b.Store)
	}
	return b, nil
}

// Close releases the database, if any.
func (b *Backend) Close() error {
	if b.Store == nil {
		return nil
	}
	return b.Store.Close()
}

// GameLog records finished sessions.
type GameLog interface {
	RecordGame(ctx context.Context, rec storage.GameRecord) (int64, error)
}

// Recorder adapts a GameLog to snake.Recorder.
type Recorder struct {
	log GameLog
}

// NewRecorder creates a recorder writing to l.
func NewRecorder(l GameLog) *Recorder {
	return &Recorder{log: l}
}

// RecordGame stores one finished session.
func (r *Recorder) RecordGame(ctx context.Context, res snake.Result) error {
	_, err := r.log.RecordGame(ctx, storage.GameRecord{
		SessionID: res.SessionID,
		Score:     res.Score,
		Length:    res.Length,
		Ticks:     res.Ticks,
		EndReason: string(res.Reason),
		Duration:  res.Duration,
	})
	return err
}

// Settings converts the field section into game settings.
func Settings(cfg config.Config) snake.Settings {
	return snake.Settings{
		Cols:     cfg.Field.Cols,
		Rows:     cfg.Field.Rows,
		CellSize: cfg.Field.CellSize,
		StartCol: cfg.Field.StartCol,
		StartRow: cfg.Field.StartRow,
		Period:   cfg.TickPeriod(),
	}
}

// NewLogger creates a logger at the named level ("" means info).
func NewLogger(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		var err error
		lvl, err = log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	}), nil
}

// OpenLogFile opens path for appending, creating parent directories.
func OpenLogFile(path string) (*os.File, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("app: create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("app: open log file: %w", err)
	}
	return f, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("app: cannot get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// NewCues returns the cue sink for the local game. With audio disabled,
// or when the device cannot be opened, cues are silent.
func NewCues(enabled bool, logger *log.Logger) (audio.Sink, func()) {
	if !enabled {
		return audio.Nop{}, func() {}
	}
	p := synth.NewPlayer(logger)
	if err := p.Init(); err != nil {
		// The player stays a no-op; keep it so mute still toggles.
		return p, func() {}
	}
	return p, p.Close
}

// ErrNoHistory is returned when the backend keeps no local game log.
var ErrNoHistory = errors.New("app: no game history for this backend")

// History returns the local game log.
func (b *Backend) History() (*storage.Store, error) {
	if b.Store == nil {
		return nil, ErrNoHistory
	}
	return b.Store, nil
}

// ErrNotLocal is returned when the leaderboard is not kept in the local
// database and so cannot be reset from here.
var ErrNotLocal = errors.New("app: leaderboard is not stored locally")

// ResetScores deletes every entry of a local sqlite leaderboard. Game
// history is kept.
func (b *Backend) ResetScores(ctx context.Context) error {
	store, ok := b.Sink.(*storage.Store)
	if !ok {
		return ErrNotLocal
	}
	return store.ClearScores(ctx)
}
