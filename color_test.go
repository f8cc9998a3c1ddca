package palette_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"git.sr.ht/~dkasak/palette"
)

func TestColorParams(t *testing.T) {
	tests := []struct {
		name   string
		color  palette.Color
		params []uint8
	}{
		{
			name:   "default color has no params",
			params: []uint8{},
		},
		{
			name:   "indexed",
			color:  palette.IndexColor(42),
			params: []uint8{42},
		},
		{
			name:   "rgb",
			color:  palette.RGBColor(1, 2, 3),
			params: []uint8{1, 2, 3},
		},
		{
			name:   "hex",
			color:  palette.HexColor(0x00AABB),
			params: []uint8{0x00, 0xAA, 0xBB},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.params, test.color.Params())
		})
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b := palette.RGBColor(10, 20, 30).RGB()
	assert.Equal(t, [3]uint8{10, 20, 30}, [3]uint8{r, g, b})

	// Indexed colors resolve through the palette table
	r, g, b = palette.IndexColor(232).RGB()
	assert.Equal(t, [3]uint8{8, 8, 8}, [3]uint8{r, g, b})
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "", palette.Color(0).Hex())
	assert.Equal(t, "#80a0c0", palette.HexColor(0x80A0C0).Hex())
	assert.Equal(t, "#5f00d7", palette.IndexColor(56).Hex())
}

func ExampleNearestIndex() {
	idx := palette.NearestIndex(0x12, 0x34, 0x56)
	fmt.Println(idx)
	// Output: 23
}

func ExampleHTMLColorToTerminal() {
	fmt.Println(palette.HTMLColorToTerminal("#ff0000"))
	fmt.Println(palette.HTMLColorToTerminal("steelblue"))
	// Output:
	// lightred
	// 67
}
