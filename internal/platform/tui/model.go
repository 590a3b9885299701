package tui

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// helpRows is the number of terminal rows reserved below the arena.
const helpRows = 1

// Model is the Bubble Tea model for running a Pong game.
// Frames go through sim; game is kept for the title and score events.
type Model struct {
	sim      core.Simulation
	game     *pong.Game
	screen   *core.Screen
	canvas   *core.Canvas
	keys     KeyMap
	help     help.Model
	keyState *KeyState
	config   core.RuntimeConfig
	logger   *log.Logger
	now      func() time.Time
	lastTick time.Time
	frames   uint64
	quitting bool
}

// ArenaBounds returns the world size for a terminal of cols x rows cells.
// Each cell covers CellWidth x CellHeight world units.
func ArenaBounds(display config.PongDisplay, cols, rows int) core.Vec2 {
	cols = core.Max(cols, 1)
	rows = core.Max(rows, 1)
	return core.V(float64(cols)*display.CellWidth, float64(rows)*display.CellHeight)
}

// minArenaRows is the fewest rows whose arena still fits a paddle, so the
// paddle clamp range [h/2, H-h/2] is never empty.
func minArenaRows(cfg config.PongConfig) int {
	return int(math.Ceil(cfg.Physics.PaddleHeight / cfg.Display.CellHeight))
}

// NewModel creates a Bubble Tea model around a fresh game.
// The arena size is fixed from the screen size given here; later resizes
// only change how the arena is scaled onto the terminal.
func NewModel(cfg config.PongConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Display.FPS
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rows := core.Max(rt.ScreenH-helpRows, 1)
	screen := core.NewScreen(core.Max(rt.ScreenW, 1), rows)

	// A terminal too short for a paddle still gets a playable arena,
	// squeezed onto the rows it has.
	arenaRows := core.Max(rows, minArenaRows(cfg))
	if arenaRows != rows {
		logger.Warn("terminal too short, arena squeezed", "rows", rows, "arena_rows", arenaRows)
	}
	bounds := ArenaBounds(cfg.Display, rt.ScreenW, arenaRows)

	//nolint:gosec // Gameplay randomness, not security sensitive
	rng := rand.New(rand.NewSource(rt.Seed))
	game := pong.New(bounds, pong.SettingsFromConfig(cfg), rng)

	logger.Debug("game created",
		"arena", fmt.Sprintf("%.0fx%.0f", bounds.X, bounds.Y),
		"seed", rt.Seed,
		"fps", rt.TickRate,
	)

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		sim:      game,
		game:     game,
		screen:   screen,
		canvas:   core.NewCanvas(screen, bounds),
		keys:     DefaultKeyMap(),
		help:     h,
		keyState: NewKeyState(
			time.Duration(cfg.Input.HoldMs)*time.Millisecond,
			time.Duration(cfg.Input.RepeatDelayMs)*time.Millisecond,
		),
		config:   rt,
		logger:   logger,
		now:      time.Now,
	}
}

// Game returns the running game.
func (m Model) Game() *pong.Game {
	return m.game
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		p1, p2 := m.game.Scores()
		m.logger.Info("quit", "p1", p1, "p2", p2, "frames", m.frames)
		m.quitting = true
		return m, tea.Quit
	}

	m.keyState.Press(action, m.now())
	return m, nil
}

// handleResize processes window resize events.
// The arena keeps its size; only the screen it is drawn on changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(core.Max(msg.Width, 1), core.Max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame with the wall-clock time since the last one.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	delta := frameDelta(m.lastTick, at)
	m.lastTick = at

	frame := m.keyState.Frame(at)
	before := m.game.Snapshot()
	m.sim.Update(frame, delta)
	m.frames++

	after := m.game.Snapshot()
	if player := pong.Scorer(before, after); player != 0 {
		m.logger.Info("point scored",
			"player", player,
			"p1", after.Score1,
			"p2", after.Score2,
		)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.sim.Render(m.canvas)

	dir := filepath.Join(os.Getenv("HOME"), ".pong", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.canvas)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.PongConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run pong: %w", err)
	}
	return nil
}
