// Package czech6x10 is the LED matrix bitmap font: a 5x10 glyph in a 6x10 cell
// covering ASCII, the Latin-1 letters used in Czech and the Czech letters from
// Latin Extended-A.
//
// Cell rows 0-1 hold accents over capitals, rows 2-8 the glyph body with the
// baseline on row 8, and row 9 descenders.
package czech6x10

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	// CellWidth is the horizontal advance of every glyph.
	CellWidth = 6
	// CellHeight is the height of every glyph.
	CellHeight = 10
	// Baseline is the cell row glyphs sit on.
	Baseline = 8

	glyphWidth = 5
	glyphRows  = CellHeight
	glyphCount = 127

	asciiFirst = 0x20
	asciiLast  = 0x7e
	asciiCount = asciiLast - asciiFirst + 1

	fallbackIndex = glyphCount - 1
)

// Fallback is the rune drawn in place of anything the font cannot map.
const Fallback = '□'

// Font implements tinyfont.Fonter.
var Font tinyfont.Fonter = font6x10{}

type font6x10 struct{}

type glyph struct {
	r rune
}

// Draw paints the set bits of the glyph; y is the baseline.
func (g glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	base := Index(g.r) * glyphRows
	top := y - Baseline
	for row := 0; row < glyphRows; row++ {
		b := glyphData[base+row]
		if b == 0 {
			continue
		}
		for col := 0; col < glyphWidth; col++ {
			if b&(0x10>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), top+int16(row), c)
		}
	}
}

func (g glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    glyphWidth,
		Height:   CellHeight,
		XAdvance: CellWidth,
		XOffset:  0,
		YOffset:  -Baseline,
	}
}

func (font6x10) GetYAdvance() uint8 { return CellHeight }

func (font6x10) GetGlyph(r rune) tinyfont.Glypher { return glyph{r: r} }

// Index returns the glyph slot for r, or the fallback slot when r is not
// covered by the font.
func Index(r rune) int {
	if r >= asciiFirst && r <= asciiLast {
		return int(r - asciiFirst)
	}
	if idx, ok := extra[r]; ok {
		return idx
	}
	return fallbackIndex
}

// Has reports whether r has its own glyph.
func Has(r rune) bool {
	return Index(r) != fallbackIndex || r == Fallback
}

// Row returns the bitmap of one glyph row, bit 4 being the leftmost pixel.
// Rows outside the cell are blank.
func Row(r rune, row int) byte {
	if row < 0 || row >= glyphRows {
		return 0
	}
	return glyphData[Index(r)*glyphRows+row]
}

var extra = func() map[rune]int {
	m := make(map[rune]int, glyphCount-asciiCount)
	for i, r := range extraOrder {
		m[r] = asciiCount + i
	}
	return m
}()

// extraOrder lists the non-ASCII glyphs in table order after the ASCII block.
var extraOrder = []rune{
	'°',
	'Á', 'É', 'Í', 'Ó', 'Ú', 'Ý',
	'á', 'é', 'í', 'ó', 'ú', 'ý',
	'Č', 'č', 'Ď', 'ď', 'Ě', 'ě', 'Ň', 'ň', 'Ř', 'ř', 'Š', 'š', 'Ť', 'ť', 'Ů', 'ů', 'Ž', 'ž',
	Fallback,
}
