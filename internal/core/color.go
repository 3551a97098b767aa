package core

// Color represents a cell color, used for both foreground and background.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorNavy
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// ANSI returns the ANSI 256-color code for c, or "" for ColorDefault.
func (c Color) ANSI() string {
	switch c {
	case ColorBlack:
		return "0"
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "11"
	case ColorBlue:
		return "4"
	case ColorNavy:
		return "17"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "15"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}
