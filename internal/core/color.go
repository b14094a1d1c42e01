package core

// Color represents a foreground color for a screen cell.
// Front ends map these to concrete terminal styles.
type Color uint8

// Predefined colors for grid elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorBrightWhite
	ColorGray
)
