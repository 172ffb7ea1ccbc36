package display

import (
	"image/color"
	"unicode/utf8"

	"logic/internal/charset"
)

// Default text origin: the 5 pixel glyph body is centered on the matrix.
const (
	DefaultOffsetX = 2
	DefaultOffsetY = 0
)

// FontWidth returns the horizontal advance of one character cell.
func (d *Display) FontWidth() int { return d.font.CellWidth }

// FontHeight returns the height of one character cell.
func (d *Display) FontHeight() int { return d.font.CellHeight }

// TextWidth returns the width of s in pixels, one cell per decoded rune.
func (d *Display) TextWidth(s string) int {
	return utf8.RuneCountInString(s) * d.font.CellWidth
}

// DrawCharacter draws r at the default origin.
func (d *Display) DrawCharacter(r rune, c RGB) {
	d.DrawCharacterAt(r, c, DefaultOffsetX, DefaultOffsetY)
}

// DrawCharacterAt draws r with the top-left corner of its cell at
// (offsetX, offsetY). Only the set bits of the glyph are painted.
func (d *Display) DrawCharacterAt(r rune, c RGB, offsetX, offsetY int) {
	d.mu.Lock()
	d.glyph(r, c.Color(), offsetX, offsetY)
	d.mu.Unlock()
}

// DrawString draws s at the default origin. See DrawStringAt.
func (d *Display) DrawString(s string, c RGB) int {
	return d.DrawStringAt(s, c, DefaultOffsetX, DefaultOffsetY)
}

// DrawStringAt draws the UTF-8 text s starting at (offsetX, offsetY) and
// returns the number of decoded runes. Every rune, including the
// utf8.RuneError of a malformed byte, takes one cell. Cells that fall outside
// the matrix are skipped but counted, so a negative offsetX scrolls the text.
func (d *Display) DrawStringAt(s string, c RGB, offsetX, offsetY int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.drawString(s, c, offsetX, offsetY)
}

// DrawRunes is DrawStringAt for decoded text.
func (d *Display) DrawRunes(rs []rune, c RGB, offsetX, offsetY int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.drawRunes(rs, c, offsetX, offsetY)
}

// DrawEncoded decodes b from cs and draws it like DrawStringAt.
func (d *Display) DrawEncoded(b []byte, cs charset.Charset, c RGB, offsetX, offsetY int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	rs, err := charset.Decode(d.runes[:0], b, cs)
	if err != nil {
		return 0, err
	}
	d.runes = rs
	return d.drawRunes(rs, c, offsetX, offsetY), nil
}

func (d *Display) drawString(s string, c RGB, offsetX, offsetY int) int {
	rgba := c.Color()
	n := 0
	for _, r := range s {
		d.glyph(r, rgba, offsetX+n*d.font.CellWidth, offsetY)
		n++
	}
	return n
}

func (d *Display) drawRunes(rs []rune, c RGB, offsetX, offsetY int) int {
	rgba := c.Color()
	for i, r := range rs {
		d.glyph(r, rgba, offsetX+i*d.font.CellWidth, offsetY)
	}
	return len(rs)
}

// glyph skips cells that lie entirely outside the matrix.
func (d *Display) glyph(r rune, c color.RGBA, x, y int) {
	if x+d.font.CellWidth <= 0 || x >= Width || y+d.font.CellHeight <= 0 || y >= Height {
		return
	}
	g := d.font.Face.GetGlyph(r)
	g.Draw((*canvas)(d), int16(x), int16(y+d.font.Baseline), c)
}

// canvas is the drivers.Displayer the glyphs are drawn through while d.mu is
// already held.
type canvas Display

func (cv *canvas) Size() (x, y int16) { return Width, Height }

func (cv *canvas) SetPixel(x, y int16, c color.RGBA) {
	(*Display)(cv).set(int(x), int(y), fromRGBA(c))
}

func (cv *canvas) Display() error { return nil }
