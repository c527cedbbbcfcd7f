// Package config provides YAML-based configuration loading for neon-snake.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/neon-snake/internal/theme"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the whole game configuration.
type Config struct {
	Field       FieldConfig       `yaml:"field"`
	TickMs      int               `yaml:"tick_ms"`
	Difficulty  DifficultyPreset  `yaml:"difficulty"`
	Theme       string            `yaml:"theme"`
	Themes      []theme.Theme     `yaml:"themes"`
	Audio       AudioConfig       `yaml:"audio"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// FieldConfig defines the play field. Positions are in cells; the game
// itself works in pixels (cell * cell_size).
type FieldConfig struct {
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
	CellSize int `yaml:"cell_size"`
	StartCol int `yaml:"start_col"`
	StartRow int `yaml:"start_row"`
}

// AudioConfig toggles the cue player.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Leaderboard backends.
const (
	BackendSQLite = "sqlite"
	BackendREST   = "rest"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// LeaderboardConfig selects and configures the score sink.
type LeaderboardConfig struct {
	Backend   string `yaml:"backend"`
	DBPath    string `yaml:"db_path"`
	URL       string `yaml:"url"`
	APIKey    string `yaml:"api_key"`
	Table     string `yaml:"table"`
	Limit     int    `yaml:"limit"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Timeout returns the request timeout for the REST backend.
func (l LeaderboardConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutMs) * time.Millisecond
}

// TickPeriod returns the tick cadence after applying the difficulty preset.
func (c Config) TickPeriod() time.Duration {
	return c.Difficulty.Period(time.Duration(c.TickMs) * time.Millisecond)
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	f := c.Field
	switch {
	case f.Cols < 2 || f.Rows < 2:
		return fmt.Errorf("%w: field must be at least 2x2 cells, got %dx%d", ErrInvalid, f.Cols, f.Rows)
	case f.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalid, f.CellSize)
	case f.StartCol < 0 || f.StartCol >= f.Cols || f.StartRow < 0 || f.StartRow >= f.Rows:
		return fmt.Errorf("%w: start cell (%d,%d) outside %dx%d field", ErrInvalid, f.StartCol, f.StartRow, f.Cols, f.Rows)
	case c.TickMs <= 0:
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalid, c.TickMs)
	}

	if _, err := ParsePreset(string(c.Difficulty)); err != nil {
		return err
	}

	if c.Theme != "" && len(c.Themes) > 0 {
		found := false
		for _, t := range c.Themes {
			if t.Name == c.Theme {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: theme %q is not defined", ErrInvalid, c.Theme)
		}
	}

	lb := c.Leaderboard
	switch lb.Backend {
	case BackendSQLite:
		if lb.DBPath == "" {
			return fmt.Errorf("%w: leaderboard.db_path is required for sqlite", ErrInvalid)
		}
	case BackendREST:
		if lb.URL == "" {
			return fmt.Errorf("%w: leaderboard.url is required for rest", ErrInvalid)
		}
	case BackendMemory, BackendNone:
	default:
		return fmt.Errorf("%w: unknown leaderboard backend %q", ErrInvalid, lb.Backend)
	}
	if lb.Limit < 0 {
		return fmt.Errorf("%w: leaderboard.limit must not be negative", ErrInvalid)
	}

	return nil
}
