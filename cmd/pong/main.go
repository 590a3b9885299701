// pong is a two-paddle Pong game for the terminal.
//
// Usage:
//
//	pong                   - Play
//	pong config            - Print the effective configuration as YAML
//	pong config --defaults - Print the built-in default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: display.fps from config)
//	--seed <value>      - Set RNG seed for reproducible serves
//	--config <path>     - Load configuration from a custom YAML file
//	--rules <preset>    - Rules preset: legacy, corrected
//	--log-file <path>   - Write logs to a file (the terminal is in use)
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagRules   string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two paddles and a ball in your terminal",
	Long: `Pong is a two-paddle game played in the terminal. You control the
left paddle; the right paddle stays put. A ball that leaves the arena
scores a point for the opposite side and is served again from a random
spot in a random direction.

Controls:
  W/Up       - Move up
  S/Down     - Move down
  R          - Serve the ball again
  Ctrl+S     - Save a text screenshot to ~/.pong/screenshots
  Q/Ctrl+C   - Quit

Rules presets:
  legacy     - Reproduce the classic behaviour, quirks included (default)
  corrected  - Paddle height counts, both paddles bounce, serves are uniform

Examples:
  pong
  pong --rules corrected
  pong --seed 42 --fps 30
  pong --config ./my-pong.yaml --log-file pong.log
  pong config > ~/.pong/pong.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "Rules preset: legacy, corrected")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from flags and the search path.
func loadConfig() (config.PongConfig, error) {
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseRulesPreset(flagRules)
	if err != nil {
		return cfg, err
	}
	config.ApplyRulesPreset(&cfg, preset)

	if flagFPS < 0 {
		return cfg, &config.InvalidError{Field: "--fps", Reason: fmt.Sprintf("must not be negative, got %d", flagFPS)}
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size; the arena is sized from it once
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Debug("terminal size unavailable, using defaults", "error", termErr)
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.FPS,
		Seed:     flagSeed,
	}

	logger.Info("starting",
		"rules", rulesName(cfg.Rules),
		"terminal", fmt.Sprintf("%dx%d", width, height),
	)

	if err := tui.Run(cfg, rt, logger); err != nil {
		logger.Error("game stopped", "error", err)
		return err
	}
	logger.Info("finished")
	return nil
}

// rulesName names the preset the rules match, or "custom".
func rulesName(r config.PongRules) string {
	for _, preset := range []config.RulesPreset{config.RulesLegacy, config.RulesCorrected} {
		cfg := config.PongConfig{}
		config.ApplyRulesPreset(&cfg, preset)
		if cfg.Rules == r {
			return string(preset)
		}
	}
	return "custom"
}
