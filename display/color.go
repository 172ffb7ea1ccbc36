package display

import "image/color"

// RGB is one LED color. The zero value is black.
type RGB struct {
	R, G, B uint8
}

// Black turns the LED off.
var Black = RGB{}

// Color returns c as an opaque color.RGBA.
func (c RGB) Color() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF} }

// Scale returns c with every channel multiplied by intensity/255.
func (c RGB) Scale(intensity uint8) RGB {
	return RGB{
		R: scale(c.R, intensity),
		G: scale(c.G, intensity),
		B: scale(c.B, intensity),
	}
}

func fromRGBA(c color.RGBA) RGB { return RGB{R: c.R, G: c.G, B: c.B} }

func scale(v, intensity uint8) uint8 {
	return uint8(uint16(v) * uint16(intensity) / 255)
}
