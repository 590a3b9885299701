package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.Fill(core.Cell{Rune: ' ', Color: core.ColorBlack})
	s.SetCell(0, 0, core.Cell{Rune: core.FillChar, Color: core.ColorBrightWhite})
	s.DrawText(2, 1, "P1", core.ColorBrightWhite)
	s.SetCell(5, 2, core.Cell{Rune: 'x', Color: core.Color(200)}) // unknown color

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}

	want := []string{"█     ", "  P1  ", "     x"}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d = %q, expected %q", i, line, want[i])
		}
	}
}
