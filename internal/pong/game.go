// Package pong implements a two-paddle Pong game in continuous world units.
// The left paddle is player controlled; the right paddle only stays in bounds.
package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Rand is the random source the game draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Settings holds the constants a game is built with.
type Settings struct {
	PaddleWidth  float64
	PaddleHeight float64
	BallSize     float64
	PlayerSpeed  float64 // Units per second
	BallSpeed    float64 // Units per second
	Rules        Rules
	DebugBall    bool // Draw the ball coordinates in the top-left corner
}

// DefaultSettings returns the classic game's sizes and speeds.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultPongConfig())
}

// SettingsFromConfig extracts game settings from a loaded configuration.
func SettingsFromConfig(cfg config.PongConfig) Settings {
	return Settings{
		PaddleWidth:  cfg.Physics.PaddleWidth,
		PaddleHeight: cfg.Physics.PaddleHeight,
		BallSize:     cfg.Physics.BallSize,
		PlayerSpeed:  cfg.Physics.PlayerSpeed,
		BallSpeed:    cfg.Physics.BallSpeed,
		Rules: Rules{
			InPlaceRotation:    cfg.Rules.InPlaceRotation,
			IgnorePaddleHeight: cfg.Rules.IgnorePaddleHeight,
			InertRightPaddle:   cfg.Rules.InertRightPaddle,
		},
		DebugBall: cfg.Display.DebugBall,
	}
}

func (s Settings) halfPaddleWidth() float64  { return s.PaddleWidth * 0.5 }
func (s Settings) halfPaddleHeight() float64 { return s.PaddleHeight * 0.5 }
func (s Settings) halfBall() float64         { return s.BallSize * 0.5 }

// Game holds the complete state of one Pong session.
type Game struct {
	p1   Paddle
	p2   Paddle
	ball Ball

	p1Score uint32
	p2Score uint32

	bounds   core.Vec2 // Arena width and height, fixed at creation
	settings Settings
	rng      Rand
}

var _ core.Simulation = (*Game)(nil)

// New creates a game for an arena of the given size.
// Paddles start mid-height at half a paddle width from each edge and the
// ball starts at the center heading (1, 1).
func New(bounds core.Vec2, settings Settings, rng Rand) *Game {
	hw := settings.halfPaddleWidth()
	return &Game{
		p1:       NewPaddle(core.V(hw, bounds.Y*0.5)),
		p2:       NewPaddle(core.V(bounds.X-hw, bounds.Y*0.5)),
		ball:     NewBall(core.V(bounds.X*0.5, bounds.Y*0.5), core.V(1, 1)),
		bounds:   bounds,
		settings: settings,
		rng:      rng,
	}
}

// Title returns the window title.
func (g *Game) Title() string {
	return "Pong"
}

// Bounds returns the arena size.
func (g *Game) Bounds() core.Vec2 {
	return g.bounds
}

// Scores returns the left and right player scores.
func (g *Game) Scores() (p1, p2 uint32) {
	return g.p1Score, g.p2Score
}

// Update advances the game by delta seconds: input first, then the ball.
func (g *Game) Update(in core.Input, delta float64) {
	g.HandleInput(in, delta)
	g.MoveBall(delta)
}

// Render draws the current game state.
func (g *Game) Render(dst core.Surface) {
	dst.Clear(core.ColorBlack)

	s := g.settings
	dst.DrawRect(g.p1.Pos, s.PaddleWidth, s.PaddleHeight, core.ColorBrightWhite)
	dst.DrawRect(g.p2.Pos, s.PaddleWidth, s.PaddleHeight, core.ColorBrightWhite)
	dst.DrawRect(g.ball.Pos, s.BallSize, s.BallSize, core.ColorBrightWhite)

	if s.DebugBall {
		dst.DrawText(core.V(0, 0), fmt.Sprintf("%.1f, %.1f", g.ball.Pos.X, g.ball.Pos.Y))
	}

	score := fmt.Sprintf("P1: %d  --  P2: %d", g.p1Score, g.p2Score)
	dst.DrawText(core.V(g.bounds.X*0.5-dst.TextWidth(score)*0.5, 5), score)
}
