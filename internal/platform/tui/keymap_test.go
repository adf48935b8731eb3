package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/egg-hatch/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionUp},
		{"s", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, core.ActionDown},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionConfirm},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestHeldKeys(t *testing.T) {
	h := newHeldKeys(150 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionRight, t0)
	h.Press(core.ActionUp, t0.Add(50*time.Millisecond))

	f := h.Frame(t0.Add(100 * time.Millisecond))
	if !f.Has(core.ActionRight) || !f.Has(core.ActionUp) {
		t.Error("both keys should be held")
	}

	f = h.Frame(t0.Add(180 * time.Millisecond))
	if f.Has(core.ActionRight) || !f.Has(core.ActionUp) {
		t.Error("right should have been released, up still held")
	}

	h.Press(core.ActionDown, t0.Add(190*time.Millisecond))
	f = h.Frame(t0.Add(195 * time.Millisecond))
	if f.Has(core.ActionUp) || !f.Has(core.ActionDown) {
		t.Error("pressing down should release up")
	}

	h.Reset()
	if f = h.Frame(t0.Add(195 * time.Millisecond)); f.Has(core.ActionDown) {
		t.Error("reset should release every key")
	}
}

func TestMoveCursor(t *testing.T) {
	tests := []struct {
		cursor, dCol, dRow, want int
	}{
		{0, 0, -1, 0},  // top edge
		{0, 0, 1, 1},   // down
		{0, 1, 0, 4},   // next column
		{3, 0, 1, 3},   // bottom edge
		{20, 0, 1, 21}, // last column
		{22, 0, 1, 22}, // past the last color
		{19, 1, 0, 19}, // right edge of row 3 has no color
	}

	for _, tc := range tests {
		if got := moveCursor(tc.cursor, tc.dCol, tc.dRow); got != tc.want {
			t.Errorf("moveCursor(%d, %d, %d) = %d, expected %d", tc.cursor, tc.dCol, tc.dRow, got, tc.want)
		}
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "egg", core.RGB(0, 255, 0))
	s.FillBackground(core.RGB(0, 0, 255))
	s.DrawText(0, 1, "hatch")

	out := newRenderer().RenderScreen(s)
	if !strings.Contains(out, "egg") || !strings.Contains(out, "hatch") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
}
