package palette

import "fmt"

// Color is a terminal color. The zero value represents the default foreground
// or background color
type Color uint32

const (
	indexed Color = 1 << 24
	rgb     Color = 1 << 25
)

// Params returns the SGR parameters for the color, or an empty slice if the
// color is the default color
func (c Color) Params() []uint8 {
	switch {
	case c&indexed != 0:
		return []uint8{uint8(c)}
	case c&rgb != 0:
		r := uint8(c >> 16)
		g := uint8(c >> 8)
		b := uint8(c)
		return []uint8{r, g, b}
	}
	return []uint8{}
}

// RGB returns the red, green, and blue channels of the color. Indexed colors
// are resolved through the xterm palette table first
func (c Color) RGB() (uint8, uint8, uint8) {
	if c&indexed != 0 {
		c = Index256[uint8(c)]
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as a lowercase "#rrggbb" string, or an empty string
// for the default color
func (c Color) Hex() string {
	if c == 0 {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func RGBColor(r uint8, g uint8, b uint8) Color {
	color := Color(int(r)<<16 | int(g)<<8 | int(b))
	return color | rgb
}

func IndexColor(index uint8) Color {
	color := Color(index)
	return color | indexed
}

// HexColor creates an RGB color from a hex value, eg 0x00AABB
func HexColor(v uint32) Color {
	return Color(v&0xFFFFFF) | rgb
}
