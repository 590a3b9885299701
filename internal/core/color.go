package core

// Color represents a foreground color for a screen cell.
// The terminal host maps each value to an ANSI color.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorBrightWhite
)
