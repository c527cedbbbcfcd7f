package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetGlyph(5, 5, Glyph{Rune: 'X', Fg: ColorFood})
	g := s.GetGlyph(5, 5)
	if g.Rune != 'X' || g.Fg != ColorFood {
		t.Errorf("GetGlyph(5, 5) = %+v, expected X in food colour", g)
	}

	// Set keeps colours
	s.Set(5, 5, 'Y')
	if g := s.GetGlyph(5, 5); g.Rune != 'Y' || g.Fg != ColorFood {
		t.Errorf("Set should keep colours, got %+v", g)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges not drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
}

func TestCanvasFillAndStroke(t *testing.T) {
	s := NewScreen(20, 6)
	c := NewCanvas(s, 1, 1, 80, 80, 20) // 4x4 cells -> 8x4 terminal cells

	if w, h := c.Size(); w != 80 || h != 80 {
		t.Fatalf("Size() = (%d, %d), expected (80, 80)", w, h)
	}
	if b := c.Bounds(); b != NewRect(1, 1, 8, 4) {
		t.Fatalf("Bounds() = %+v, expected {1 1 8 4}", b)
	}

	c.FillRect(0, 0, 80, 80, ColorBackground)
	for y := 1; y < 5; y++ {
		for x := 1; x < 9; x++ {
			if g := s.GetGlyph(x, y); g.Bg != ColorBackground {
				t.Fatalf("cell (%d, %d) bg = %q, expected background", x, y, g.Bg)
			}
		}
	}
	if g := s.GetGlyph(0, 0); g.Bg != ColorDefault {
		t.Error("FillRect should not paint outside the canvas")
	}

	// One field cell at pixel (20, 40) -> terminal columns 3..4, row 3
	c.FillRect(20, 40, 20, 20, ColorFood)
	c.StrokeRect(20, 40, 20, 20, ColorOutline)
	left, right := s.GetGlyph(3, 3), s.GetGlyph(4, 3)
	if left.Rune != '[' || right.Rune != ']' {
		t.Errorf("stroke glyphs = %q%q, expected []", left.Rune, right.Rune)
	}
	if left.Bg != ColorFood || left.Fg != ColorOutline {
		t.Errorf("stroke should keep fill bg and set fg, got %+v", left)
	}

	c.Clear()
	if g := s.GetGlyph(3, 3); g != blank {
		t.Errorf("Clear() left %+v", g)
	}
}

func TestCanvasClipsOutOfField(t *testing.T) {
	s := NewScreen(10, 4)
	c := NewCanvas(s, 0, 0, 40, 40, 20)

	c.FillRect(-20, 0, 20, 20, ColorFood)
	c.FillRect(40, 0, 20, 20, ColorFood)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetGlyph(x, y).Bg == ColorFood {
				t.Fatalf("out-of-field fill leaked to (%d, %d)", x, y)
			}
		}
	}
}
