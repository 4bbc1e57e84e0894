package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink     // blobs larger than the player
	ColorLavender // blobs the player can absorb
	ColorDarkGreen
	ColorSilver
)

// Hex returns an RGB hex string for the color, for collaborators that render
// outside a terminal.
func (c Color) Hex() string {
	switch c {
	case ColorPink:
		return "#ffaaaa"
	case ColorLavender:
		return "#aaaaff"
	case ColorDarkGreen:
		return "#003300"
	case ColorSilver:
		return "#aaaaaa"
	case ColorBrightGreen:
		return "#00ee00"
	case ColorGray:
		return "#cccccc"
	case ColorWhite, ColorBrightWhite:
		return "#f1f1f1"
	case ColorRed, ColorBrightRed:
		return "#ff0000"
	case ColorYellow, ColorBrightYellow:
		return "#ffff00"
	default:
		return "#000000"
	}
}
