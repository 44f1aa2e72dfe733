package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an actual terminal color.
type Color uint8

// Predefined colors. Piece types map onto these; the theme decides what
// each one looks like.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

var colorNames = [...]string{
	ColorDefault: "default",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorOrange:  "orange",
	ColorGray:    "gray",
}

// String returns the lowercase name used in theme files.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// ColorByName looks up a color by its theme name.
func ColorByName(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return ColorDefault, false
}

// Colors returns every predefined color in declaration order.
func Colors() []Color {
	out := make([]Color, len(colorNames))
	for i := range colorNames {
		out[i] = Color(i)
	}
	return out
}
