package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// HandleInput moves the left paddle for the held actions, then keeps both
// paddles inside the arena. A held restart re-serves the ball first.
func (g *Game) HandleInput(in core.Input, delta float64) {
	if in.Has(core.ActionRestart) {
		g.ResetBall()
	}

	if in.Has(core.ActionUp) {
		g.p1.Pos.Y -= delta * g.settings.PlayerSpeed
	}
	if in.Has(core.ActionDown) {
		g.p1.Pos.Y += delta * g.settings.PlayerSpeed
	}

	g.ClampPaddles()
}

// ClampPaddles keeps both paddle centers within half a paddle of the arena edges.
func (g *Game) ClampPaddles() {
	hh := g.settings.halfPaddleHeight()
	g.p1.clampY(g.bounds.Y, hh)
	g.p2.clampY(g.bounds.Y, hh)
}

// MoveBall advances the ball, reflects it off walls and paddles, and scores.
// Reflection flips velocity only; the ball can sit past a wall for a frame.
func (g *Game) MoveBall(delta float64) {
	g.ball.advance(g.settings.BallSpeed, delta)

	half := g.settings.halfBall()
	if g.ball.Pos.Y >= g.bounds.Y-half || g.ball.Pos.Y <= half {
		g.ball.Velocity.Y = -g.ball.Velocity.Y
	}

	if g.hitsPaddle(g.p1, -1) || (!g.settings.Rules.InertRightPaddle && g.hitsPaddle(g.p2, 1)) {
		g.ball.Velocity.X = -g.ball.Velocity.X
	}

	g.CheckWinner()
}

// hitsPaddle reports whether the ball should bounce off p. facing is the
// horizontal direction the ball travels when approaching p.
func (g *Game) hitsPaddle(p Paddle, facing float64) bool {
	hw := g.settings.halfPaddleWidth()
	if g.ball.Pos.X <= p.Pos.X-hw || g.ball.Pos.X >= p.Pos.X+hw {
		return false
	}
	if g.settings.Rules.IgnorePaddleHeight {
		return true
	}

	reach := g.settings.halfPaddleHeight() + g.settings.halfBall()
	if math.Abs(g.ball.Pos.Y-p.Pos.Y) > reach {
		return false
	}
	return g.ball.Velocity.X*facing > 0
}

// CheckWinner awards a point when the ball reaches either side and re-serves it.
func (g *Game) CheckWinner() {
	if g.ball.Pos.X <= 0 {
		g.ResetBall()
		g.p2Score++
	}

	if g.ball.Pos.X >= g.bounds.X {
		g.ResetBall()
		g.p1Score++
	}
}

// ResetBall turns the ball through a random angle, renormalizes its
// direction, and drops it somewhere in the middle of the arena.
func (g *Game) ResetBall() {
	theta := g.rng.Float64() * 2 * math.Pi
	sin, cos := math.Sincos(theta)

	prev := g.ball.Velocity
	v := prev
	v.X = cos*prev.X - sin*prev.Y
	if g.settings.Rules.InPlaceRotation {
		v.Y = sin*v.X + cos*prev.Y
	} else {
		v.Y = sin*prev.X + cos*prev.Y
	}

	// theta = pi/2 on a horizontal direction collapses the in-place rotation.
	if v.Len() < 1e-12 {
		v = prev
	}
	if v.Len() < 1e-12 {
		v = core.V(1, 1)
	}
	g.ball.Velocity = v
	g.ball.normalizeVelocity()

	g.ball.Pos.X = g.randRange(g.bounds.X*0.3, g.bounds.X*0.6)
	g.ball.Pos.Y = g.randRange(g.bounds.Y*0.3, g.bounds.Y*0.6)
}

// randRange returns a uniform value in [lo, hi).
func (g *Game) randRange(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
