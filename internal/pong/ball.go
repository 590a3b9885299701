package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Ball is a square ball. Velocity is a direction; Settings.BallSpeed scales it.
type Ball struct {
	Pos      core.Vec2
	Velocity core.Vec2
}

// NewBall creates a ball at pos travelling along velocity.
func NewBall(pos, velocity core.Vec2) Ball {
	return Ball{Pos: pos, Velocity: velocity}
}

// advance moves the ball along its velocity for delta seconds.
func (b *Ball) advance(speed, delta float64) {
	b.Pos = b.Pos.Add(b.Velocity.Scale(speed * delta))
}

// normalizeVelocity rescales the direction to unit length.
func (b *Ball) normalizeVelocity() {
	b.Velocity = b.Velocity.Normalize()
}
