package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors. The named shades after ColorGray exist for the
// level-dependent ghost palettes.
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
	ColorPink
	ColorPurple
	ColorLime
	ColorDarkRed
	ColorHotPink
	ColorAqua
	ColorGold
	ColorDarkViolet
	ColorDeepPink
	ColorSpringGreen
	ColorDarkOrange
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightBlue:    "bright-blue",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
	ColorPink:          "pink",
	ColorPurple:        "purple",
	ColorLime:          "lime",
	ColorDarkRed:       "darkred",
	ColorHotPink:       "hotpink",
	ColorAqua:          "aqua",
	ColorGold:          "gold",
	ColorDarkViolet:    "darkviolet",
	ColorDeepPink:      "deeppink",
	ColorSpringGreen:   "springgreen",
	ColorDarkOrange:    "darkorange",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}
