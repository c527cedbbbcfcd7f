package snake

import (
	"time"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// Settings describe the play field and cadence.
type Settings struct {
	Cols     int
	Rows     int
	CellSize int
	// StartCol and StartRow place the initial head, in cells.
	StartCol int
	StartRow int
	Period   time.Duration
}

// DefaultSettings is a 20x20 field of 20px cells ticking every 100ms,
// starting at (180,200).
func DefaultSettings() Settings {
	return Settings{
		Cols:     20,
		Rows:     20,
		CellSize: 20,
		StartCol: 9,
		StartRow: 10,
		Period:   100 * time.Millisecond,
	}
}

// Extent returns the field size in pixels.
func (s Settings) Extent() (width, height int) {
	return s.Cols * s.CellSize, s.Rows * s.CellSize
}

// StartCell returns the initial head position in pixels.
func (s Settings) StartCell() core.Cell {
	return core.Cell{X: s.StartCol * s.CellSize, Y: s.StartRow * s.CellSize}
}

// InField reports whether c lies inside [0, extent) on both axes.
func (s Settings) InField(c core.Cell) bool {
	w, h := s.Extent()
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}
