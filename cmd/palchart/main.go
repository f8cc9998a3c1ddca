// palchart renders the xterm 256 color chart, either with SGR indexed
// cells on a terminal or as a sixel image
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/mattn/go-sixel"
	"golang.org/x/term"

	"git.sr.ht/~dkasak/palette"
)

func main() {
	var useSixel bool
	flag.BoolVar(&useSixel, "sixel", false, "emit the chart as a sixel image")
	flag.Parse()

	if useSixel {
		if err := writeSixel(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "stdout is not a terminal, use -sixel for image output")
		os.Exit(1)
	}
	writeCells(os.Stdout)
}

// writeCells prints the chart as 16 rows of indexed background cells
func writeCells(w io.Writer) {
	for i := 0; i < 256; i++ {
		if i > 0 && i%16 == 0 {
			fmt.Fprint(w, "\x1b[0m\n")
		}
		params := palette.IndexColor(uint8(i)).Params()
		fmt.Fprintf(w, "\x1b[48;5;%dm %3d ", params[0], i)
	}
	fmt.Fprint(w, "\x1b[0m\n")
}

// writeSixel draws the chart into a 16x16 grid of swatches and encodes it
// as a sixel image
func writeSixel(w io.Writer) error {
	const swatch = 12
	img := image.NewRGBA(image.Rect(0, 0, 16*swatch, 16*swatch))
	for i := 0; i < 256; i++ {
		r, g, b := palette.Index256[i].RGB()
		x0 := (i % 16) * swatch
		y0 := (i / 16) * swatch
		for y := y0; y < y0+swatch; y++ {
			for x := x0; x < x0+swatch; x++ {
				img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
			}
		}
	}
	return sixel.NewEncoder(w).Encode(img)
}
