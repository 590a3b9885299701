// Package tui runs a Pong game inside a Bubble Tea program.
// It handles the terminal UI loop, input mapping, and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed since the previous tick.
// The first tick has no predecessor and yields zero, as does a clock that
// steps backwards.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	d := now.Sub(prev).Seconds()
	if d < 0 {
		return 0
	}
	return d
}
