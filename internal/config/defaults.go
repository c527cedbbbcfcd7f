package config

import (
	_ "embed"

	"github.com/vovakirdan/neon-snake/internal/theme"
)

//go:embed defaults/neon.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration: a 20x20 field of 20px
// cells, 100ms ticks and a local SQLite leaderboard.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Cols:     20,
			Rows:     20,
			CellSize: 20,
			StartCol: 9,
			StartRow: 10,
		},
		TickMs:     100,
		Difficulty: DifficultyNormal,
		Theme:      theme.Neon.Name,
		Themes:     theme.Presets(),
		Audio:      AudioConfig{Enabled: true},
		Leaderboard: LeaderboardConfig{
			Backend:   BackendSQLite,
			DBPath:    "~/.arcade/neon.db",
			Table:     "scores",
			Limit:     10,
			TimeoutMs: 10000,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
