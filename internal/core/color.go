package core

// Color is a foreground color tag for a screen cell. The platform maps
// these to terminal styles; the game never deals in ANSI codes directly.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorGold // Tokens and score
)
