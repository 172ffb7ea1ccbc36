package app

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"logic/display"
)

// scene draws one animation into the display, one frame per step.
type scene interface {
	name() string
	reset()
	step(frame uint64)
}

type textScene struct {
	s *display.Scroller
}

func newTextScene(d *display.Display, text string) *textScene {
	return &textScene{s: display.NewScroller(d, text, display.RGB{R: 255, G: 160, B: 0})}
}

func (t *textScene) name() string { return "text" }

func (t *textScene) reset() { t.s.SetText(t.s.Text()) }

func (t *textScene) step(uint64) { t.s.Step() }

// shapesScene loops through the drawing primitives: nested outlines, a
// growing disc and a thick line sweeping down the matrix.
type shapesScene struct {
	d *display.Display
}

const (
	shapesPhaseFrames = display.Height
	shapesPhases      = 3
)

var (
	shapeBlue   = display.RGB{B: 255}
	shapeGreen  = display.RGB{G: 255}
	shapeRed    = display.RGB{R: 255}
	shapeYellow = display.RGB{R: 255, G: 200}
)

func newShapesScene(d *display.Display) *shapesScene { return &shapesScene{d: d} }

func (s *shapesScene) name() string { return "shapes" }
func (s *shapesScene) reset()       {}

func (s *shapesScene) step(frame uint64) {
	d := s.d
	phase := int(frame/shapesPhaseFrames) % shapesPhases
	i := int(frame % shapesPhaseFrames)

	d.Clear()
	switch phase {
	case 0:
		layers := i%((display.Width+1)/2) + 1
		d.DrawRect(display.Rect(0, 1, display.Width, display.Width), shapeBlue, display.Outline(layers))
		d.DrawSquareFilled(display.Width/2-1, display.Height/2-1, 2, shapeYellow)
	case 1:
		r := i % (display.Width / 2)
		d.DrawCircleFilled(display.Width/2, display.Height/2, r, shapeGreen)
		d.DrawCircle(display.Width/2, display.Height/2, r+1, shapeRed)
	default:
		d.DrawLine(0, i-1, display.Width-1, i-1, shapeRed, 3)
		d.DrawLine(0, display.Height-1-i, display.Width-1, i, shapeBlue, 1)
	}
}

// rainbowScene fills the matrix with diagonal bands of the colour wheel.
type rainbowScene struct {
	d *display.Display
}

const rainbowStepDeg = 12.0

func newRainbowScene(d *display.Display) *rainbowScene { return &rainbowScene{d: d} }

func (s *rainbowScene) name() string { return "rainbow" }
func (s *rainbowScene) reset()       {}

func (s *rainbowScene) step(frame uint64) {
	for band := 0; band < display.Width+display.Height-1; band++ {
		h := float64((int(frame%30)+band)%30) * rainbowStepDeg
		r, g, b := colorful.Hsv(h, 1, 1).RGB255()
		c := display.RGB{R: r, G: g, B: b}
		// Band k holds the pixels with x+y == k.
		x0, y0 := band, 0
		if x0 >= display.Width {
			x0, y0 = display.Width-1, band-display.Width+1
		}
		x1, y1 := band-(display.Height-1), display.Height-1
		if x1 < 0 {
			x1, y1 = 0, band
		}
		s.d.DrawLine(x0, y0, x1, y1, c, 1)
	}
}

// sparkleScene fades the matrix and lights a few random LEDs every frame.
// Their hue drifts around the wheel once a minute.
type sparkleScene struct {
	l *Logic
}

const (
	sparkleFade   = 192
	sparkleMax    = 4
	sparkleSpread = 60
)

func newSparkleScene(l *Logic) *sparkleScene { return &sparkleScene{l: l} }

func (s *sparkleScene) name() string { return "sparkle" }
func (s *sparkleScene) reset()       { s.l.disp.Clear() }

func (s *sparkleScene) step(uint64) {
	d := s.l.disp
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if c, ok := d.Get(x, y); ok && c != display.Black {
				d.SetColor(x, y, c.Scale(sparkleFade))
			}
		}
	}
	base := s.l.Seconds() * 6
	for n := s.l.Random(1, sparkleMax+1); n > 0; n-- {
		h := math.Mod(base+float64(s.l.Random(0, sparkleSpread)), 360)
		r, g, b := colorful.Hsv(h, 1, 1).RGB255()
		d.SetColor(s.l.Random(0, display.Width), s.l.Random(0, display.Height), display.RGB{R: r, G: g, B: b})
	}
}
