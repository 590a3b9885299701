package core

import (
	"math"
	"unicode/utf8"
)

// FillChar is the rune used for filled rectangles.
const FillChar = '█'

// Surface is the rendering service a Simulation draws on.
// Coordinates are world units; the surface owns the mapping to pixels or cells.
type Surface interface {
	// Size returns the drawable size in world units.
	Size() Vec2
	// Clear fills the whole surface with the given color.
	Clear(c Color)
	// DrawRect draws a filled rectangle centered at center.
	DrawRect(center Vec2, w, h float64, c Color)
	// DrawText draws text with its top-left corner at pos.
	DrawText(pos Vec2, text string)
	// TextWidth returns the width text would occupy, in world units.
	TextWidth(text string) float64
}

// Simulation is driven once per frame by a host loop: Update, then Render.
type Simulation interface {
	Update(in Input, delta float64)
	Render(dst Surface)
}

// Canvas implements Surface over a character Screen, scaling a fixed world
// size onto whatever the screen dimensions currently are.
type Canvas struct {
	screen    *Screen
	world     Vec2
	TextColor Color
}

var _ Surface = (*Canvas)(nil)

// NewCanvas wraps screen so that world maps onto its full area.
func NewCanvas(screen *Screen, world Vec2) *Canvas {
	return &Canvas{
		screen:    screen,
		world:     world,
		TextColor: ColorBrightWhite,
	}
}

// Size returns the world size.
func (c *Canvas) Size() Vec2 {
	return c.world
}

// cellX converts a world x coordinate to fractional screen columns.
func (c *Canvas) cellX(x float64) float64 {
	if c.world.X <= 0 {
		return 0
	}
	return x * float64(c.screen.Width()) / c.world.X
}

// cellY converts a world y coordinate to fractional screen rows.
func (c *Canvas) cellY(y float64) float64 {
	if c.world.Y <= 0 {
		return 0
	}
	return y * float64(c.screen.Height()) / c.world.Y
}

// Clear fills the screen with blank cells of the given color.
func (c *Canvas) Clear(col Color) {
	c.screen.Fill(Cell{Rune: ' ', Color: col})
}

// DrawRect draws a filled rectangle. Anything visible covers at least one cell.
func (c *Canvas) DrawRect(center Vec2, w, h float64, col Color) {
	x0 := int(math.Floor(c.cellX(center.X - w/2)))
	x1 := int(math.Ceil(c.cellX(center.X + w/2)))
	y0 := int(math.Floor(c.cellY(center.Y - h/2)))
	y1 := int(math.Ceil(c.cellY(center.Y + h/2)))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	c.screen.DrawRect(NewRect(x0, y0, x1-x0, y1-y0), Cell{Rune: FillChar, Color: col})
}

// DrawText writes text starting at the cell containing pos.
func (c *Canvas) DrawText(pos Vec2, text string) {
	c.screen.DrawText(int(math.Floor(c.cellX(pos.X))), int(math.Floor(c.cellY(pos.Y))), text, c.TextColor)
}

// TextWidth returns the world width of text, one cell per rune.
func (c *Canvas) TextWidth(text string) float64 {
	if c.screen.Width() == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(text)) * c.world.X / float64(c.screen.Width())
}
