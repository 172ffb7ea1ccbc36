//go:build !tinygo && cgo

package hal

import (
	"image/color"

	"logic/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RunWindow starts a desktop window that shows the LED matrix and the status
// bar and maps the arrow, enter and escape keys to the board buttons.
// It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, opts HostOptions) error {
	h := newHostHAL(opts)
	defer h.flash.Close()
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	w, ht := previewSize()
	ebiten.SetWindowTitle("Logic (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w*2, ht*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h      *hostHAL
	step   func() error
	matrix []color.RGBA
	status []color.RGBA
}

func (g *hostGame) Update() error {
	g.h.buttons.pollEbiten()
	g.h.t.step(1)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x14, G: 0x14, B: 0x18, A: 0xFF})

	g.matrix = g.h.matrix.snapshot(g.matrix)
	g.status = g.h.status.snapshot(g.status)

	for i, c := range g.matrix {
		x, y := ledCenter(i%previewCols, i/previewCols)
		vector.DrawFilledCircle(screen, x, y, previewLEDRadius, previewColor(c), true)
	}
	for i, c := range g.status {
		x, y := ledCenter(i, previewRows+1)
		vector.DrawFilledCircle(screen, x, y, previewLEDRadius, previewColor(c), true)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize()
}
