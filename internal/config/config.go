// Package config provides YAML-based game configuration loading for Pong.
package config

// PongConfig contains all configuration for the Pong game and its host.
type PongConfig struct {
	Physics PongPhysics `yaml:"physics"`
	Rules   PongRules   `yaml:"rules"`
	Display PongDisplay `yaml:"display"`
	Input   PongInput   `yaml:"input"`
}

// PongPhysics defines sizes and speeds in world units.
type PongPhysics struct {
	PaddleWidth  float64 `yaml:"paddle_width"`
	PaddleHeight float64 `yaml:"paddle_height"`
	BallSize     float64 `yaml:"ball_size"`
	PlayerSpeed  float64 `yaml:"player_speed"`
	BallSpeed    float64 `yaml:"ball_speed"`
}

// PongRules toggles the historical physics quirks.
type PongRules struct {
	InPlaceRotation    bool `yaml:"in_place_rotation"`
	IgnorePaddleHeight bool `yaml:"ignore_paddle_height"`
	InertRightPaddle   bool `yaml:"inert_right_paddle"`
}

// PongDisplay defines how the world maps onto the terminal.
type PongDisplay struct {
	FPS        int     `yaml:"fps"`
	CellWidth  float64 `yaml:"cell_width"`  // World units per column
	CellHeight float64 `yaml:"cell_height"` // World units per row
	DebugBall  bool    `yaml:"debug_ball"`  // Show ball coordinates in the corner
}

// PongInput defines keyboard polling behaviour.
type PongInput struct {
	// HoldMs is how long a key counts as held after an auto-repeat.
	HoldMs int `yaml:"hold_ms"`
	// RepeatDelayMs is how long a key counts as held after a fresh press,
	// covering the terminal's pause before auto-repeat starts.
	RepeatDelayMs int `yaml:"repeat_delay_ms"`
}

// RulesPreset represents a named rule set.
type RulesPreset string

const (
	RulesLegacy    RulesPreset = "legacy"
	RulesCorrected RulesPreset = "corrected"
)

// ApplyRulesPreset modifies the config based on a rules preset.
// Unknown or empty presets leave the config untouched.
func ApplyRulesPreset(cfg *PongConfig, preset RulesPreset) {
	switch preset {
	case RulesLegacy:
		cfg.Rules = PongRules{InPlaceRotation: true, IgnorePaddleHeight: true, InertRightPaddle: true}
	case RulesCorrected:
		cfg.Rules = PongRules{}
	}
}

// ParseRulesPreset validates a preset name. Empty is allowed and means "keep config".
func ParseRulesPreset(s string) (RulesPreset, error) {
	switch p := RulesPreset(s); p {
	case "", RulesLegacy, RulesCorrected:
		return p, nil
	default:
		return "", &InvalidError{Field: "rules", Reason: "must be legacy or corrected, got " + s}
	}
}
