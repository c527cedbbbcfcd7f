package core

// GlyphWidth is the number of terminal columns used per field cell, so that
// square cells look square in a terminal.
const GlyphWidth = 2

// Canvas is a pixel-space drawing surface projected onto a region of a
// Screen. One field cell of cellSize pixels becomes GlyphWidth columns by
// one row. Fills set the background colour; strokes draw a bracket outline
// in the foreground colour over whatever fill is already there.
type Canvas struct {
	screen   *Screen
	originX  int
	originY  int
	width    int
	height   int
	cellSize int
}

// NewCanvas creates a canvas of width x height pixels whose top-left corner
// sits at terminal position (originX, originY).
func NewCanvas(screen *Screen, originX, originY, width, height, cellSize int) *Canvas {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Canvas{
		screen:   screen,
		originX:  originX,
		originY:  originY,
		width:    width,
		height:   height,
		cellSize: cellSize,
	}
}

// Size returns the pixel extent of the canvas.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Bounds returns the terminal rectangle covered by the canvas.
func (c *Canvas) Bounds() Rect {
	cols := ceilDiv(c.width, c.cellSize)
	rows := ceilDiv(c.height, c.cellSize)
	return NewRect(c.originX, c.originY, cols*GlyphWidth, rows)
}

// Clear resets every cell of the canvas to an uncoloured space.
func (c *Canvas) Clear() {
	b := c.Bounds()
	for y := b.Y; y < b.Bottom(); y++ {
		for x := b.X; x < b.Right(); x++ {
			c.screen.SetGlyph(x, y, blank)
		}
	}
}

// FillRect paints the cells covered by the pixel rectangle with col.
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	c.each(x, y, w, h, func(tx, ty int, _ bool) {
		c.screen.SetGlyph(tx, ty, Glyph{Rune: ' ', Bg: col})
	})
}

// StrokeRect outlines the cells on the perimeter of the pixel rectangle.
func (c *Canvas) StrokeRect(x, y, w, h int, col Color) {
	c.each(x, y, w, h, func(tx, ty int, edge bool) {
		if !edge {
			return
		}
		g := c.screen.GetGlyph(tx, ty)
		g.Fg = col
		if (tx-c.originX)%GlyphWidth == 0 {
			g.Rune = '['
		} else {
			g.Rune = ']'
		}
		c.screen.SetGlyph(tx, ty, g)
	})
}

// each visits the terminal cells covered by a pixel rectangle, clipped to
// the canvas. edge is true for cells on the rectangle's perimeter.
func (c *Canvas) each(x, y, w, h int, fn func(tx, ty int, edge bool)) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := Clamp(x, 0, c.width) / c.cellSize
	y0 := Clamp(y, 0, c.height) / c.cellSize
	x1 := ceilDiv(Clamp(x+w, 0, c.width), c.cellSize)
	y1 := ceilDiv(Clamp(y+h, 0, c.height), c.cellSize)

	for gy := y0; gy < y1; gy++ {
		for gx := x0; gx < x1; gx++ {
			edge := gx == x0 || gx == x1-1 || gy == y0 || gy == y1-1
			for col := range GlyphWidth {
				fn(c.originX+gx*GlyphWidth+col, c.originY+gy, edge)
			}
		}
	}
}
