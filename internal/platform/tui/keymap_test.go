package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quarterslot/bricks/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAxis(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	keys.Apply(runeKey('a'), &frame)
	if frame.Axis != -1 {
		t.Errorf("axis = %v after 'a', expected -1", frame.Axis)
	}

	frame.Clear()
	keys.Apply(tea.KeyMsg{Type: tea.KeyRight}, &frame)
	if frame.Axis != 1 {
		t.Errorf("axis = %v after right arrow, expected 1", frame.Axis)
	}

	// Both directions in one frame cancel out.
	frame.Clear()
	keys.Apply(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	keys.Apply(runeKey('d'), &frame)
	if frame.Axis != 0 {
		t.Errorf("axis = %v with both directions held, expected 0", frame.Axis)
	}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	if quit := keys.Apply(tea.KeyMsg{Type: tea.KeySpace}, &frame); quit {
		t.Error("space should not quit")
	}
	if !frame.Has(core.ActionServe) {
		t.Error("space should set the serve action")
	}

	keys.Apply(runeKey('p'), &frame)
	if !frame.Has(core.ActionPause) {
		t.Error("'p' should set the pause action")
	}

	keys.Apply(runeKey('r'), &frame)
	if !frame.Has(core.ActionRestart) {
		t.Error("'r' should set the restart action")
	}

	if quit := keys.Apply(runeKey('q'), &frame); !quit {
		t.Error("'q' should request quit")
	}
	if quit := keys.Apply(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame); !quit {
		t.Error("ctrl+c should request quit")
	}
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "abcd", core.ColorDefault)
	s.DrawText(0, 1, "wxyz", core.ColorDefault)

	// With only the default color the output is the plain buffer.
	if got := RenderScreen(s); got != "abcd\nwxyz" {
		t.Errorf("RenderScreen = %q, expected plain rows", got)
	}
}
