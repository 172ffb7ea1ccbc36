package display

import (
	"fmt"
	"image/color"
	"sync"

	"logic/fonts/czech6x10"
	"logic/hal"

	"tinygo.org/x/tinyfont"
)

const (
	// Width is the number of LED columns.
	Width = 10
	// Height is the number of LED rows.
	Height = 12
	// Pixels is the length of the frame buffer.
	Pixels = Width * Height
)

// DefaultIntensity is the intensity used by Display until SetIntensity is
// called.
const DefaultIntensity = 255

// Font describes a fixed-cell bitmap font. Baseline is the cell row the
// glyphs of Face are drawn relative to.
type Font struct {
	Face       tinyfont.Fonter
	CellWidth  int
	CellHeight int
	Baseline   int
}

// DefaultFont is the built-in Czech 6x10 font.
var DefaultFont = Font{
	Face:       czech6x10.Font,
	CellWidth:  czech6x10.CellWidth,
	CellHeight: czech6x10.CellHeight,
	Baseline:   czech6x10.Baseline,
}

// Display is the LED matrix frame buffer and its output strip.
type Display struct {
	mu        sync.Mutex
	frame     [Pixels]RGB
	out       []color.RGBA
	strip     hal.Strip
	logger    hal.Logger
	intensity uint8
	font      Font
	runes     []rune
}

// Option configures a Display.
type Option func(*Display)

// WithLogger reports strip failures to l.
func WithLogger(l hal.Logger) Option {
	return func(d *Display) { d.logger = l }
}

// WithIntensity sets the intensity used by Display.
func WithIntensity(v uint8) Option {
	return func(d *Display) { d.intensity = v }
}

// WithFont replaces the text font. A font without a face or with an empty
// cell is ignored.
func WithFont(f Font) Option {
	return func(d *Display) {
		if f.Face == nil || f.CellWidth <= 0 || f.CellHeight <= 0 {
			return
		}
		d.font = f
	}
}

// New returns a cleared display that transmits to strip.
func New(strip hal.Strip, opts ...Option) *Display {
	d := &Display{
		out:       make([]color.RGBA, Pixels),
		strip:     strip,
		intensity: DefaultIntensity,
		font:      DefaultFont,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Width and Height report the matrix size.
func (d *Display) Width() int  { return Width }
func (d *Display) Height() int { return Height }

// At returns the pixel at (x, y). Coordinates are not checked and the
// returned handle is not synchronized.
func (d *Display) At(x, y int) *RGB {
	return &d.frame[y*Width+x]
}

// AtIndex returns the pixel at linear index i (y*Width + x). Like At it is
// neither checked nor synchronized.
func (d *Display) AtIndex(i int) *RGB {
	return &d.frame[i]
}

// SetColor sets one pixel. Coordinates outside the matrix are ignored.
func (d *Display) SetColor(x, y int, c RGB) {
	d.mu.Lock()
	d.set(x, y, c)
	d.mu.Unlock()
}

// Get returns the pixel at (x, y); ok is false outside the matrix.
func (d *Display) Get(x, y int) (c RGB, ok bool) {
	if !inBounds(x, y) {
		return RGB{}, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame[y*Width+x], true
}

// Clear turns every pixel black.
func (d *Display) Clear() {
	d.Fill(Black)
}

// Fill sets every pixel to c.
func (d *Display) Fill(c RGB) {
	d.mu.Lock()
	d.fill(c)
	d.mu.Unlock()
}

// SetIntensity sets the intensity used by Display.
func (d *Display) SetIntensity(v uint8) {
	d.mu.Lock()
	d.intensity = v
	d.mu.Unlock()
}

// Intensity returns the intensity used by Display.
func (d *Display) Intensity() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.intensity
}

// Show transmits the frame with every channel scaled by intensity/255. The
// buffer stays locked until the strip has taken the frame.
func (d *Display) Show(intensity uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.show(intensity)
}

// Display transmits the frame at the configured intensity.
func (d *Display) Display() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.show(d.intensity)
}

func (d *Display) show(intensity uint8) error {
	for i, p := range d.frame {
		d.out[i] = p.Scale(intensity).Color()
	}
	if err := d.strip.WriteColors(d.out); err != nil {
		err = fmt.Errorf("display: show: %w", err)
		if d.logger != nil {
			d.logger.WriteLineString(err.Error())
		}
		return err
	}
	return nil
}

// Size implements drivers.Displayer.
func (d *Display) Size() (x, y int16) { return Width, Height }

// SetPixel implements drivers.Displayer. The alpha channel is ignored.
func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	d.SetColor(int(x), int(y), fromRGBA(c))
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// set, fill and the other lower-case helpers expect d.mu to be held.
func (d *Display) set(x, y int, c RGB) {
	if !inBounds(x, y) {
		return
	}
	d.frame[y*Width+x] = c
}

func (d *Display) fill(c RGB) {
	for i := range d.frame {
		d.frame[i] = c
	}
}
