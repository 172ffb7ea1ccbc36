package hal

import "image/color"

// previewColor maps a transmitted LED color to a screen color. Dim LEDs are
// lifted along a square-root curve so low intensities stay visible.
func previewColor(c color.RGBA) color.RGBA {
	return color.RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: 0xFF}
}

func lift(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return uint8(isqrt(uint32(v) * 255))
}

func isqrt(n uint32) uint32 {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
