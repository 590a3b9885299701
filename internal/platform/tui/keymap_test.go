package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runes("w"), core.ActionUp},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runes("s"), core.ActionDown},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"r", runes("r"), core.ActionRestart},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
		{"screenshot is host only", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 4 {
		t.Errorf("ShortHelp() has %d bindings, expected 4", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 1 {
		t.Errorf("FullHelp() has %d groups, expected 1", len(km.FullHelp()))
	}
}
