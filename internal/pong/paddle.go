package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Paddle is a center-anchored paddle. Its size lives in Settings.
type Paddle struct {
	Pos core.Vec2
}

// NewPaddle creates a paddle centered at pos.
func NewPaddle(pos core.Vec2) Paddle {
	return Paddle{Pos: pos}
}

// clampY keeps the paddle's center within [halfHeight, boundHeight-halfHeight].
func (p *Paddle) clampY(boundHeight, halfHeight float64) {
	Clamp(&p.Pos.Y, boundHeight-halfHeight, halfHeight)
}

// Clamp restricts *value to [lo, hi]. Below lo wins over above hi.
func Clamp(value *float64, hi, lo float64) {
	*value = core.ClampF(*value, lo, hi)
}
