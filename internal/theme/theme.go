// Package theme holds the colour themes used to paint the snake and the
// surrounding chrome, plus the retro (green phosphor) display toggle.
package theme

import (
	"strings"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// Theme is a named pair of accent colours. Primary paints the snake's head,
// Secondary its body.
type Theme struct {
	Name      string     `yaml:"name"`
	Primary   core.Color `yaml:"primary"`
	Secondary core.Color `yaml:"secondary"`
}

// Neon is the default theme.
var Neon = Theme{Name: "neon", Primary: "#00f3ff", Secondary: "#bc13fe"}

// Presets returns the built-in themes, Neon first.
func Presets() []Theme {
	return []Theme{
		Neon,
		{Name: "toxic", Primary: "#39ff14", Secondary: "#ffe600"},
		{Name: "sunset", Primary: "#ff6b35", Secondary: "#ff1f8e"},
		{Name: "ice", Primary: "#e0fbff", Secondary: "#3a86ff"},
	}
}

// Selector tracks the active theme and the retro toggle.
type Selector struct {
	themes []Theme
	index  int
	retro  bool
}

// NewSelector creates a selector over themes, starting at the one named
// initial (case-insensitive). Unknown names start at the first theme; an
// empty list falls back to Presets.
func NewSelector(themes []Theme, initial string) *Selector {
	if len(themes) == 0 {
		themes = Presets()
	}
	s := &Selector{themes: themes}
	for i, t := range themes {
		if strings.EqualFold(t.Name, initial) {
			s.index = i
			break
		}
	}
	return s
}

// Current returns the active theme.
func (s *Selector) Current() Theme {
	return s.themes[s.index]
}

// Next switches to the following theme, wrapping around, and returns it.
func (s *Selector) Next() Theme {
	s.index = (s.index + 1) % len(s.themes)
	return s.Current()
}

// ToggleRetro flips retro mode and returns the new state.
func (s *Selector) ToggleRetro() bool {
	s.retro = !s.retro
	return s.retro
}

// Retro reports whether retro mode is on.
func (s *Selector) Retro() bool {
	return s.retro
}

// Head returns the colour for the snake's head.
func (s *Selector) Head() core.Color {
	if s.retro {
		return core.ColorPhosphor
	}
	return s.Current().Primary
}

// Body returns the colour for the snake's body.
func (s *Selector) Body() core.Color {
	if s.retro {
		return core.ColorDim
	}
	return s.Current().Secondary
}

// Food returns the colour for the food cell.
func (s *Selector) Food() core.Color {
	if s.retro {
		return core.ColorPhosphor
	}
	return core.ColorFood
}
