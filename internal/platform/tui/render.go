package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/core"
)

type styleKey struct {
	fg, bg core.Color
}

// Painter turns core.Screen buffers into styled strings. Styles are built
// from one lipgloss renderer so SSH sessions get their own colour profile.
type Painter struct {
	r     *lipgloss.Renderer
	cache map[styleKey]lipgloss.Style
}

// NewPainter creates a painter. A nil renderer uses the default one.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{r: r, cache: make(map[styleKey]lipgloss.Style)}
}

// Style returns a fresh style bound to the painter's renderer.
func (p *Painter) Style() lipgloss.Style {
	return p.r.NewStyle()
}

func (p *Painter) style(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}
	if s, ok := p.cache[k]; ok {
		return s
	}
	s := p.r.NewStyle()
	if fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(bg))
	}
	p.cache[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (p *Painter) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetGlyph(x, y)

			var run strings.Builder
			for x < s.Width() {
				g := s.GetGlyph(x, y)
				if g.Fg != start.Fg || g.Bg != start.Bg {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			if start.Fg == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
