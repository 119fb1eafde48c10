package core

// Color represents a foreground color for a screen cell.
// Hosts map it to ANSI 256-color codes (terminal) or RGB (window).
type Color uint8

// Predefined colors. The first group matches the item fallback palette,
// the rest are used by the HUD and overlays.
const (
	ColorDefault Color = iota
	ColorSilver
	ColorDeepSkyBlue
	ColorGold
	ColorCrimson
	ColorGreen
	ColorYellow
	ColorRed
	ColorCyan
	ColorWhite
	ColorGray
	ColorMagenta
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSilver:
		return "silver"
	case ColorDeepSkyBlue:
		return "deepskyblue"
	case ColorGold:
		return "gold"
	case ColorCrimson:
		return "crimson"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorRed:
		return "red"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorMagenta:
		return "magenta"
	default:
		return "unknown"
	}
}
