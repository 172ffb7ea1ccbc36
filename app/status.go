package app

import (
	"image/color"

	"logic/display"
	"logic/hal"
)

var statusColor = display.RGB{G: 255, B: 64}

// statusBar shows the intensity as a bar on the status LEDs.
type statusBar struct {
	strip hal.Strip
	buf   [hal.StatusLEDs]color.RGBA
}

func newStatusBar(s hal.Strip) *statusBar {
	return &statusBar{strip: s}
}

// barLength returns how many of n LEDs are lit for intensity v; any non-zero
// intensity lights at least one.
func barLength(v, n int) int {
	return (v*n + 254) / 255
}

// show draws the bar for intensity. The bar itself is drawn at that
// intensity too.
func (b *statusBar) show(intensity int) error {
	lit := barLength(intensity, len(b.buf))
	// Keep the bar readable at the lowest settings.
	c := statusColor.Scale(uint8(clamp(intensity, 16, 255))).Color()
	for i := range b.buf {
		if i < lit {
			b.buf[i] = c
		} else {
			b.buf[i] = color.RGBA{A: 0xFF}
		}
	}
	return b.strip.WriteColors(b.buf[:])
}

func (b *statusBar) clear() error {
	for i := range b.buf {
		b.buf[i] = color.RGBA{A: 0xFF}
	}
	return b.strip.WriteColors(b.buf[:])
}
