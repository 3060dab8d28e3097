package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quarterslot/bricks/internal/breakout"
	"github.com/quarterslot/bricks/internal/core"
)

// Model is the Bubble Tea model driving the game. It measures the real
// elapsed time between ticks and hands it to the core as dt, so the
// simulation speed is independent of the tick rate actually achieved.
type Model struct {
	game     *breakout.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	frame    core.InputFrame
	state    core.GameState
	lastTick time.Time
	quitting bool
}

// NewModel creates the model for a game session.
func NewModel(game *breakout.Game, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game: game,
		// Bottom row is reserved for the help footer.
		screen: core.NewScreen(cfg.Cols, max(cfg.Rows-1, 1)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		config: cfg,
		frame:  core.NewInputFrame(),
	}
}

// Init initializes the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.Apply(msg, &m.frame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.Cols = msg.Width
		m.config.Rows = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick runs one simulation frame with the measured dt.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1000.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = float64(now.Sub(m.lastTick).Microseconds()) / 1000.0
	}
	m.lastTick = now

	result := m.game.Step(m.frame, dt)
	m.state = result.State
	m.frame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the screen buffer plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for one game session.
func Run(game *breakout.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewModel(game, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
