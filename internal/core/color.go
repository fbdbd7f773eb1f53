package core

// Color represents a foreground color for a screen cell.
// Maps to ANSI 256-color codes in the terminal layer.
type Color uint8

// Palette used by the world renderer and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorBrown
	ColorGray
)
