package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform resolves keyboards and gamepad buttons into these
// before the game ever sees them.
type Action int

const (
	ActionNone    Action = iota
	ActionServe          // Space, gamepad trigger - put the ball in play
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionServe:
		return "Serve"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the resolved input state for a single simulation frame.
// Axis is the normalized paddle axis in [-1, 1]: -1 full left, +1 full
// right. Digital keys map to the extremes; an analog stick may land
// anywhere in between.
type InputFrame struct {
	Axis    float64
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetAxis stores the paddle axis, clamped to [-1, 1].
func (f *InputFrame) SetAxis(axis float64) {
	f.Axis = ClampF(axis, -1, 1)
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Axis = 0
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
