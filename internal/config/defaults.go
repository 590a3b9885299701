package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			PaddleWidth:  20,
			PaddleHeight: 100,
			BallSize:     15,
			PlayerSpeed:  500,
			BallSpeed:    250,
		},
		Rules: PongRules{
			InPlaceRotation:    true,
			IgnorePaddleHeight: true,
			InertRightPaddle:   true,
		},
		Display: PongDisplay{
			FPS:        60,
			CellWidth:  10,
			CellHeight: 25,
			DebugBall:  true,
		},
		Input: PongInput{
			HoldMs:        120,
			RepeatDelayMs: 500,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}

// InvalidError reports a configuration value that cannot be used.
type InvalidError struct {
	Field  string
	Reason string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

// Validate checks that every size, speed and rate is usable.
func (c PongConfig) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"physics.paddle_width", c.Physics.PaddleWidth},
		{"physics.paddle_height", c.Physics.PaddleHeight},
		{"physics.ball_size", c.Physics.BallSize},
		{"physics.player_speed", c.Physics.PlayerSpeed},
		{"physics.ball_speed", c.Physics.BallSpeed},
		{"display.cell_width", c.Display.CellWidth},
		{"display.cell_height", c.Display.CellHeight},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return &InvalidError{Field: p.field, Reason: fmt.Sprintf("must be positive, got %v", p.value)}
		}
	}
	if c.Display.FPS <= 0 {
		return &InvalidError{Field: "display.fps", Reason: fmt.Sprintf("must be positive, got %d", c.Display.FPS)}
	}
	if c.Input.HoldMs < 0 {
		return &InvalidError{Field: "input.hold_ms", Reason: fmt.Sprintf("must not be negative, got %d", c.Input.HoldMs)}
	}
	if c.Input.RepeatDelayMs < 0 {
		return &InvalidError{Field: "input.repeat_delay_ms", Reason: fmt.Sprintf("must not be negative, got %d", c.Input.RepeatDelayMs)}
	}
	return nil
}
