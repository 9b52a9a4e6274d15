package core

// Color identifies a cell color. The platform layer maps these to
// terminal styles; core stays free of styling dependencies.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorDarkGray
)
