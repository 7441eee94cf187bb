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
)

// palette holds the ANSI code and an RGB approximation for every color.
var palette = [...]struct {
	ansi    string
	r, g, b uint8
}{
	ColorDefault:       {"", 220, 220, 220},
	ColorRed:           {"1", 205, 49, 49},
	ColorGreen:         {"2", 13, 188, 121},
	ColorYellow:        {"3", 229, 229, 16},
	ColorBlue:          {"4", 36, 114, 200},
	ColorMagenta:       {"5", 188, 63, 188},
	ColorCyan:          {"6", 17, 168, 205},
	ColorWhite:         {"7", 229, 229, 229},
	ColorBrightRed:     {"9", 241, 76, 76},
	ColorBrightGreen:   {"10", 35, 209, 139},
	ColorBrightYellow:  {"11", 245, 245, 67},
	ColorBrightBlue:    {"12", 59, 142, 234},
	ColorBrightMagenta: {"13", 214, 112, 214},
	ColorBrightCyan:    {"14", 41, 184, 219},
	ColorBrightWhite:   {"15", 255, 255, 255},
	ColorOrange:        {"208", 255, 135, 0},
	ColorGray:          {"245", 138, 138, 138},
}

// ANSI returns the terminal color code, or "" for the terminal's default foreground.
func (c Color) ANSI() string {
	if int(c) >= len(palette) {
		return ""
	}
	return palette[c].ansi
}

// RGB returns an approximation of the color for pixel-based frontends.
func (c Color) RGB() (r, g, b uint8) {
	if int(c) >= len(palette) {
		c = ColorDefault
	}
	p := palette[c]
	return p.r, p.g, p.b
}
