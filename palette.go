package palette

// The nearest-color search below follows the colour_find_rgb routine from
// tmux: quantize into the 6x6x6 cube, work out the closest grey, and keep
// whichever of the two is nearer.

// The six cube levels are not evenly spread. Darker tones have coarser
// resolution in the terminal, so the intensities run 0, 95, 135, 175, 215,
// 255 rather than linearly.
var cubeLevels = [6]int{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// cubeLevel quantizes an 8-bit channel value to a cube level in [0,5]
func cubeLevel(v int) int {
	if v < 48 {
		return 0
	}
	if v < 114 {
		return 1
	}
	return (v - 35) / 40
}

// distSq is the squared euclidean distance between two RGB triplets. The
// square root is never needed, comparisons are monotonic without it
func distSq(r1, g1, b1, r2, g2, b2 int) int {
	dr := r1 - r2
	dg := g1 - g2
	db := b1 - b2
	return dr*dr + dg*dg + db*db
}

// NearestIndex maps an RGB triplet to the closest entry of the xterm 256
// color palette. xterm provides a 6x6x6 color cube (16-231) and 24 greys
// (232-255); the result is always within that range, the 16 basic colors
// are never produced. When the cube candidate and the grey candidate are
// equally close, the cube color wins
func NearestIndex(r8, g8, b8 uint8) uint8 {
	r := int(r8)
	g := int(g8)
	b := int(b8)

	qr := cubeLevel(r)
	qg := cubeLevel(g)
	qb := cubeLevel(b)
	cr := cubeLevels[qr]
	cg := cubeLevels[qg]
	cb := cubeLevels[qb]

	cube := 16 + 36*qr + 6*qg + qb
	if cr == r && cg == g && cb == b {
		return uint8(cube)
	}

	// Closest grey. The ramp runs 8, 18, ... 238
	avg := (r + g + b) / 3
	greyIdx := 23
	if avg <= 238 {
		greyIdx = (avg - 3) / 10
		if greyIdx < 0 {
			greyIdx = 0
		}
	}
	grey := 8 + 10*greyIdx

	if distSq(grey, grey, grey, r, g, b) < distSq(cr, cg, cb, r, g, b) {
		return uint8(232 + greyIdx)
	}
	return uint8(cube)
}

// Index256 is the xterm 256 color palette. Entries 0-15 carry the legacy
// HTML values of the 16 basic colors, 16-231 the color cube, 232-255 the
// grey ramp. Built once, never mutated
var Index256 = buildIndex256()

func buildIndex256() [256]Color {
	p := [256]Color{
		HexColor(0x000000), // black
		HexColor(0x800000), // red
		HexColor(0x008000), // green
		HexColor(0x808000), // brown
		HexColor(0x000080), // blue
		HexColor(0x800080), // magenta
		HexColor(0x008080), // cyan
		HexColor(0xc0c0c0), // default
		HexColor(0x808080), // gray
		HexColor(0xff0000), // lightred
		HexColor(0x00ff00), // lightgreen
		HexColor(0xffff00), // yellow
		HexColor(0x0000ff), // lightblue
		HexColor(0xff00ff), // lightmagenta
		HexColor(0x00ffff), // lightcyan
		HexColor(0xffffff), // white
	}
	i := 16
	for _, r := range cubeLevels {
		for _, g := range cubeLevels {
			for _, b := range cubeLevels {
				p[i] = RGBColor(uint8(r), uint8(g), uint8(b))
				i++
			}
		}
	}
	for n := 0; n < 24; n++ {
		v := uint8(8 + 10*n)
		p[i] = RGBColor(v, v, v)
		i++
	}
	return p
}
