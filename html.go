package palette

import (
	"strings"

	"golang.org/x/image/colornames"
)

// LegacyColorParser converts an HTML color attribute value to a Color. It
// reports false when the value has no color interpretation. The default is
// ParseLegacyColor; HTMLColorToTerminal can be composed with any other
// implementation through htmlColorToTerminal
type LegacyColorParser func(string) (Color, bool)

const asciiWhitespace = " \t\n\r\f"

// ParseLegacyColor implements the WHATWG rules for parsing a legacy color
// value: CSS named colors, #rgb shorthand, and the permissive character
// munging browsers apply to everything else. Only strings that are empty
// after trimming ASCII whitespace and "transparent" fail to parse
func ParseLegacyColor(s string) (Color, bool) {
	s = strings.Trim(s, asciiWhitespace)
	if s == "" {
		return 0, false
	}
	if strings.EqualFold(s, "transparent") {
		return 0, false
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGBColor(c.R, c.G, c.B), true
	}
	if len(s) == 4 && s[0] == '#' &&
		isHexDigit(s[1]) && isHexDigit(s[2]) && isHexDigit(s[3]) {
		r := hexDigit(s[1])
		g := hexDigit(s[2])
		b := hexDigit(s[3])
		return RGBColor(r<<4|r, g<<4|g, b<<4|b), true
	}
	return mungeLegacyColor(s), true
}

// mungeLegacyColor is the fallback branch of the legacy rules: every string
// becomes some color. Code points above U+FFFF count as two zeros, the
// input is capped at 128 characters, non-hex characters turn into zeros,
// and the result is split into three components of equal length
func mungeLegacyColor(s string) Color {
	runes := make([]rune, 0, len(s))
	for _, r := range s {
		if r > 0xFFFF {
			runes = append(runes, '0', '0')
		} else {
			runes = append(runes, r)
		}
	}
	if len(runes) > 128 {
		runes = runes[:128]
	}
	if len(runes) > 0 && runes[0] == '#' {
		runes = runes[1:]
	}
	hex := make([]byte, len(runes))
	for i, r := range runes {
		if r < 0x80 && isHexDigit(byte(r)) {
			hex[i] = byte(r)
		} else {
			hex[i] = '0'
		}
	}
	for len(hex) == 0 || len(hex)%3 != 0 {
		hex = append(hex, '0')
	}

	n := len(hex) / 3
	red, green, blue := hex[:n], hex[n:2*n], hex[2*n:]
	if n > 8 {
		red, green, blue = red[n-8:], green[n-8:], blue[n-8:]
		n = 8
	}
	for n > 2 && red[0] == '0' && green[0] == '0' && blue[0] == '0' {
		red, green, blue = red[1:], green[1:], blue[1:]
		n--
	}
	if n > 2 {
		red, green, blue = red[:2], green[:2], blue[:2]
	}
	return RGBColor(hexValue(red), hexValue(green), hexValue(blue))
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	}
	return false
}

func hexDigit(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

// hexValue interprets one or two hex digits as a channel value
func hexValue(s []byte) uint8 {
	var v uint8
	for _, b := range s {
		v = v<<4 | hexDigit(b)
	}
	return v
}
