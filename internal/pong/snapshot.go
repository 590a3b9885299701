package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Snapshot is a value copy of the game state for observers.
type Snapshot struct {
	Paddle1      core.Vec2
	Paddle2      core.Vec2
	BallPos      core.Vec2
	BallVelocity core.Vec2
	Score1       uint32
	Score2       uint32
	Bounds       core.Vec2
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Paddle1:      g.p1.Pos,
		Paddle2:      g.p2.Pos,
		BallPos:      g.ball.Pos,
		BallVelocity: g.ball.Velocity,
		Score1:       g.p1Score,
		Score2:       g.p2Score,
		Bounds:       g.bounds,
	}
}

// Scorer reports which player gained a point between two snapshots:
// 1, 2, or 0 for none.
func Scorer(before, after Snapshot) int {
	switch {
	case after.Score1 > before.Score1:
		return 1
	case after.Score2 > before.Score2:
		return 2
	default:
		return 0
	}
}
