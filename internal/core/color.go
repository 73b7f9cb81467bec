package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors. The tile palette climbs from gray through yellow and
// orange to red and magenta as values grow.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorRed
	ColorBrightRed
	ColorMagenta
	ColorBrightMagenta
	ColorCyan
	ColorGreen
)
