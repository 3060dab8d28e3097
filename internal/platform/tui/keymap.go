package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quarterslot/bricks/internal/core"
)

// KeyMap holds the game key bindings. It implements help.KeyMap so the
// bubbles help component can render the footer from it.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Serve   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
		Serve: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "serve"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the single-line help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Serve, k.Pause, k.Quit}
}

// FullHelp is the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Serve},
		{k.Pause, k.Restart, k.Quit},
	}
}

// Apply resolves a key press into the input frame. Digital left/right keys
// deflect the paddle axis fully; holding both nets zero. Returns true if
// the key was a quit request.
func (k KeyMap) Apply(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		return true
	case key.Matches(msg, k.Left):
		frame.SetAxis(frame.Axis - 1)
	case key.Matches(msg, k.Right):
		frame.SetAxis(frame.Axis + 1)
	case key.Matches(msg, k.Serve):
		frame.Set(core.ActionServe)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	}
	return false
}
