package snake

import "github.com/vovakirdan/neon-snake/internal/core"

// render redraws the whole field: background, body with outlines (head in
// the primary colour), then food.
func (s *Session) render() {
	surf := s.deps.Surface
	if surf == nil {
		return
	}

	w, h := s.settings.Extent()
	size := s.settings.CellSize
	pal := s.deps.Palette

	surf.Clear()
	surf.FillRect(0, 0, w, h, core.ColorBackground)

	for i, c := range s.snake {
		col := pal.Body()
		if i == 0 {
			col = pal.Head()
		}
		surf.FillRect(c.X, c.Y, size, size, col)
		surf.StrokeRect(c.X, c.Y, size, size, core.ColorOutline)
	}

	surf.FillRect(s.food.X, s.food.Y, size, size, pal.Food())
}
