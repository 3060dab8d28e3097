// Package tui provides the Bubble Tea integration for the bricks game:
// the frame loop, key mapping and styled rendering. The game core never
// imports anything from here.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation frame. The wall-clock time it carries is
// what the model measures dt from, so a stalled frame simply shows up as a
// larger dt on the next tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the configured rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
