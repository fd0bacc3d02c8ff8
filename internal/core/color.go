package core

import "strings"

// Color identifies a player's chip colour.
// The zero value is ColorNone, which never appears on a board.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorYellow
	ColorGreen
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorWhite
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorOrange:
		return "orange"
	case ColorWhite:
		return "white"
	default:
		return "none"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorYellow:
		return 'Y'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorMagenta:
		return 'M'
	case ColorCyan:
		return 'C'
	case ColorOrange:
		return 'O'
	case ColorWhite:
		return 'W'
	default:
		return '?'
	}
}

// ParseColor converts a string to a Color.
// Returns ColorNone and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return ColorRed, true
	case "yellow", "y":
		return ColorYellow, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "magenta", "m":
		return ColorMagenta, true
	case "cyan", "c":
		return ColorCyan, true
	case "orange", "o":
		return ColorOrange, true
	case "white", "w":
		return ColorWhite, true
	default:
		return ColorNone, false
	}
}

// ChipColors returns the chip colours in the order they are handed out
// to players that do not pick one.
func ChipColors() []Color {
	return []Color{ColorRed, ColorYellow, ColorGreen, ColorBlue, ColorMagenta, ColorCyan, ColorOrange, ColorWhite}
}
