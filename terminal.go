package palette

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidColor is returned when a lookup key falls outside the fixed
// domain of a conversion table. The caller is expected to validate inputs
// before converting, so hitting this is a programming error on their side
var ErrInvalidColor = errors.New("invalid terminal color")

// The 16 basic colors under the names the chat layer uses, keyed by the
// legacy HTML value each one renders as
var basicColorNames = map[Color]string{
	RGBColor(0, 0, 0):       "black",        // 0
	RGBColor(128, 0, 0):     "red",          // 1
	RGBColor(0, 128, 0):     "green",        // 2
	RGBColor(128, 128, 0):   "brown",        // 3
	RGBColor(0, 0, 128):     "blue",         // 4
	RGBColor(128, 0, 128):   "magenta",      // 5
	RGBColor(0, 128, 128):   "cyan",         // 6
	RGBColor(192, 192, 192): "default",      // 7
	RGBColor(128, 128, 128): "gray",         // 8
	RGBColor(255, 0, 0):     "lightred",     // 9
	RGBColor(0, 255, 0):     "lightgreen",   // 10
	RGBColor(255, 255, 0):   "yellow",       // 11
	RGBColor(0, 0, 255):     "lightblue",    // 12
	RGBColor(255, 0, 255):   "lightmagenta", // 13
	RGBColor(0, 255, 255):   "lightcyan",    // 14
	RGBColor(255, 255, 255): "white",        // 15
}

var basicColorIndex = map[string]uint8{
	"black":        0,
	"red":          1,
	"green":        2,
	"brown":        3,
	"blue":         4,
	"magenta":      5,
	"cyan":         6,
	"default":      7,
	"gray":         8,
	"lightred":     9,
	"lightgreen":   10,
	"yellow":       11,
	"lightblue":    12,
	"lightmagenta": 13,
	"lightcyan":    14,
	"white":        15,
}

// lineColors assigns a terminal color to each of the 100 message line
// color codes: basic color names for 0-15, a historical spread of xterm
// indices for 16-98, and the terminal default for 99
var lineColors = [100]string{
	"white", "black", "blue", "green", "lightred", "red", "magenta",
	"brown", "yellow", "lightgreen", "cyan", "lightcyan", "lightblue",
	"lightmagenta", "darkgray", "gray",
	"52", "94", "100", "58", "22", "29", "23", "24", "17", "54", "53",
	"89", "88", "130", "142", "64", "28", "35", "30", "25", "18", "91",
	"90", "125", "124", "166", "184", "106", "34", "49", "37", "33",
	"19", "129", "127", "161", "196", "208", "226", "154", "46", "86",
	"51", "75", "21", "171", "201", "198", "203", "215", "227", "191",
	"83", "122", "87", "111", "63", "177", "207", "205", "217", "223",
	"229", "193", "157", "158", "159", "153", "147", "183", "219",
	"212", "16", "233", "235", "237", "239", "241", "244", "247",
	"250", "254", "231",
	"default",
}

// HTMLColorToTerminal converts a legacy HTML color string to the terminal
// color the chat layer should render it with: a basic color name when the
// parsed value matches one of the 16 basic colors exactly, otherwise the
// decimal index of the nearest xterm palette entry. Empty and unparsable
// input yield an empty string
func HTMLColorToTerminal(s string) string {
	return htmlColorToTerminal(s, ParseLegacyColor)
}

func htmlColorToTerminal(s string, parse LegacyColorParser) string {
	if s == "" {
		return ""
	}
	c, ok := parse(s)
	if !ok {
		return ""
	}
	if name, ok := basicColorNames[c]; ok {
		return name
	}
	r, g, b := c.RGB()
	return strconv.Itoa(int(NearestIndex(r, g, b)))
}

// TerminalColorToHTML returns the canonical "#rrggbb" value for a basic
// color name or a decimal xterm index in [0,255]. Anything else is outside
// the contract and returns ErrInvalidColor
func TerminalColorToHTML(s string) (string, error) {
	if idx, ok := basicColorIndex[s]; ok {
		return Index256[idx].Hex(), nil
	}
	idx, err := strconv.Atoi(s)
	if err != nil || idx < 0 || idx > 255 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Index256[idx].Hex(), nil
}

// LineColorToTerminal resolves a message line color code in [0,99] to a
// terminal color identifier. Codes outside the table return ErrInvalidColor
func LineColorToTerminal(code string) (string, error) {
	n, err := strconv.Atoi(code)
	if err != nil || n < 0 || n >= len(lineColors) {
		return "", fmt.Errorf("%w: line color %q", ErrInvalidColor, code)
	}
	return lineColors[n], nil
}
