package core

// RuntimeConfig is passed to the game at initialization. The playfield is
// a fixed pixel rectangle for the whole session; the terminal cell grid is
// only a projection target for rendering.
type RuntimeConfig struct {
	FieldW   float64 // Playfield width in pixels
	FieldH   float64 // Playfield height in pixels
	Cols     int     // Terminal width in character cells
	Rows     int     // Terminal height in character cells
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic serves
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
// The 800x600 playfield matches the classic desktop window this game
// grew up in.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:   800,
		FieldH:   600,
		Cols:     80,
		Rows:     24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in the platform layer
	}
}

// Field returns the playfield rectangle.
func (c RuntimeConfig) Field() Rect {
	return NewRect(0, 0, c.FieldW, c.FieldH)
}

// GameState communicates game status to the platform.
type GameState struct {
	Score    int
	Tokens   int  // Remaining lives
	GameOver bool // Tokens exhausted
	Cleared  bool // Every brick destroyed
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
