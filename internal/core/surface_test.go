package core

import (
	"math"
	"testing"
)

func TestCanvasDrawRect(t *testing.T) {
	// 80x24 cells over an 800x600 world: 10 units per column, 25 per row.
	s := NewScreen(80, 24)
	c := NewCanvas(s, V(800, 600))

	// Left paddle: 20x100 centered at (10, 300) spans columns 0-1, rows 10-13.
	c.DrawRect(V(10, 300), 20, 100, ColorBrightWhite)

	for y := 10; y < 14; y++ {
		for x := 0; x < 2; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != FillChar || cell.Color != ColorBrightWhite {
				t.Errorf("expected paddle cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
	if s.GetCell(2, 11).Rune != ' ' {
		t.Error("paddle should not extend to column 2")
	}
	if s.GetCell(0, 9).Rune != ' ' || s.GetCell(0, 14).Rune != ' ' {
		t.Error("paddle should cover exactly rows 10-13")
	}
}

func TestCanvasDrawRectMinimumCell(t *testing.T) {
	s := NewScreen(8, 6)
	c := NewCanvas(s, V(800, 600))

	// Far smaller than a cell, still visible.
	c.DrawRect(V(450, 250), 1, 1, ColorBrightWhite)

	if s.GetCell(4, 2).Rune != FillChar {
		t.Errorf("tiny rect should occupy its cell, screen:\n%s", s.String())
	}
}

func TestCanvasDrawTextAndWidth(t *testing.T) {
	s := NewScreen(80, 24)
	c := NewCanvas(s, V(800, 600))

	c.DrawText(V(100, 30), "P1")
	if s.GetCell(10, 1).Rune != 'P' || s.GetCell(11, 1).Rune != '1' {
		t.Errorf("text not placed at (10, 1): %q", s.Row(1))
	}
	if s.GetCell(10, 1).Color != ColorBrightWhite {
		t.Errorf("text color = %v, expected bright white", s.GetCell(10, 1).Color)
	}

	if w := c.TextWidth("P1: 0"); math.Abs(w-50) > 1e-9 {
		t.Errorf("TextWidth() = %v, expected 50", w)
	}
}

func TestCanvasClearAndSize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Fill(Cell{Rune: 'x'})
	c := NewCanvas(s, V(40, 40))

	c.Clear(ColorBlack)
	if cell := s.GetCell(3, 3); cell.Rune != ' ' || cell.Color != ColorBlack {
		t.Errorf("after Clear got %+v", cell)
	}
	if c.Size() != V(40, 40) {
		t.Errorf("Size() = %v", c.Size())
	}
}

func TestCanvasFollowsResize(t *testing.T) {
	s := NewScreen(80, 24)
	c := NewCanvas(s, V(800, 600))
	s.Resize(40, 12)

	c.DrawRect(V(790, 590), 20, 20, ColorBrightWhite)
	if s.GetCell(39, 11).Rune != FillChar {
		t.Errorf("bottom-right rect should land in the last cell after resize:\n%s", s.String())
	}
}
