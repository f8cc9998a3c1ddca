package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLColorToTerminal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name: "empty input",
		},
		{
			name:  "transparent does not parse",
			input: "transparent",
		},
		{
			name:  "exact basic color by hex",
			input: "#ff0000",
			want:  "lightred",
		},
		{
			name:  "exact basic color by name",
			input: "blue",
			want:  "lightblue",
		},
		{
			name:  "silver is the terminal default",
			input: "silver",
			want:  "default",
		},
		{
			name:  "black",
			input: "#000000",
			want:  "black",
		},
		{
			name:  "white",
			input: "white",
			want:  "white",
		},
		{
			name:  "arbitrary hex maps into the cube",
			input: "#123456",
			want:  "23",
		},
		{
			name:  "grey maps onto the ramp",
			input: "#808080",
			want:  "gray",
		},
		{
			name:  "off-grey maps onto the ramp",
			input: "#828282",
			want:  "244",
		},
		{
			name:  "named color outside the basic sixteen",
			input: "steelblue",
			want:  "67",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, HTMLColorToTerminal(test.input))
		})
	}
}

func TestHTMLColorToTerminalCustomParser(t *testing.T) {
	// A parser that rejects everything makes the adapter return empty for
	// any input
	reject := func(string) (Color, bool) { return 0, false }
	assert.Equal(t, "", htmlColorToTerminal("#ff0000", reject))
}

func TestTerminalColorToHTML(t *testing.T) {
	basics := map[string]string{
		"black":        "#000000",
		"red":          "#800000",
		"green":        "#008000",
		"brown":        "#808000",
		"blue":         "#000080",
		"magenta":      "#800080",
		"cyan":         "#008080",
		"default":      "#c0c0c0",
		"gray":         "#808080",
		"lightred":     "#ff0000",
		"lightgreen":   "#00ff00",
		"yellow":       "#ffff00",
		"lightblue":    "#0000ff",
		"lightmagenta": "#ff00ff",
		"lightcyan":    "#00ffff",
		"white":        "#ffffff",
	}
	for name, hex := range basics {
		got, err := TerminalColorToHTML(name)
		require.NoError(t, err)
		assert.Equal(t, hex, got, name)
	}

	got, err := TerminalColorToHTML("21")
	require.NoError(t, err)
	assert.Equal(t, "#0000ff", got)

	got, err = TerminalColorToHTML("255")
	require.NoError(t, err)
	assert.Equal(t, "#eeeeee", got)
}

func TestTerminalColorToHTMLInvalid(t *testing.T) {
	for _, input := range []string{"", "bogus", "256", "-1", "darkgray", "1.5"} {
		_, err := TerminalColorToHTML(input)
		assert.ErrorIs(t, err, ErrInvalidColor, "input %q", input)
	}
}

func TestLineColorToTerminal(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"0", "white"},
		{"1", "black"},
		{"4", "lightred"},
		{"14", "darkgray"},
		{"15", "gray"},
		{"16", "52"},
		{"35", "25"},
		{"88", "16"},
		{"98", "231"},
		{"99", "default"},
	}

	for _, test := range tests {
		got, err := LineColorToTerminal(test.code)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "code %s", test.code)
	}
}

func TestLineColorToTerminalInvalid(t *testing.T) {
	for _, code := range []string{"", "100", "-1", "abc", "1e1"} {
		_, err := LineColorToTerminal(code)
		assert.ErrorIs(t, err, ErrInvalidColor, "code %q", code)
	}
}
