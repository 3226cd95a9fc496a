package core

// Color is the foreground color of a screen cell. The platform layer maps
// each value to a terminal color.
type Color uint8

// Palette of the playfield, HUD and menus.
const (
	ColorDefault Color = iota
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// Shade picks a color for a tint intensity in [0,1].
// Full intensity keeps the base color; dimmer tints fall through gray to dark gray.
func Shade(base Color, tint float64) Color {
	switch {
	case tint >= 0.75:
		return base
	case tint >= 0.35 && base != ColorDarkGray:
		return ColorGray
	default:
		return ColorDarkGray
	}
}
