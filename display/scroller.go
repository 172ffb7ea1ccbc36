package display

import "unicode/utf8"

// Scroller moves a line of text across the matrix from right to left, one
// pixel per Step. It is not safe for concurrent use; the display it draws on
// is.
type Scroller struct {
	d      *Display
	text   string
	width  int
	color  RGB
	y      int
	offset int
}

// NewScroller returns a scroller that starts with text just off the right
// edge of d.
func NewScroller(d *Display, text string, c RGB) *Scroller {
	s := &Scroller{d: d, color: c, y: DefaultOffsetY}
	s.SetText(text)
	return s
}

// SetText replaces the text and restarts from the right edge.
func (s *Scroller) SetText(text string) {
	s.text = text
	s.width = utf8.RuneCountInString(text) * s.d.FontWidth()
	s.offset = Width
}

// SetColor changes the text colour from the next Step.
func (s *Scroller) SetColor(c RGB) { s.color = c }

// SetRow moves the text cell to row y.
func (s *Scroller) SetRow(y int) { s.y = y }

// Text and Offset report the scrolled text and its current left edge.
func (s *Scroller) Text() string { return s.text }
func (s *Scroller) Offset() int  { return s.offset }

// Step clears the display, draws the text at the current offset and moves it
// one pixel left. Once the text has left the matrix it restarts at the right
// edge. Step reports whether this frame wrapped around.
func (s *Scroller) Step() (wrapped bool) {
	d := s.d
	d.mu.Lock()
	d.fill(Black)
	d.drawString(s.text, s.color, s.offset, s.y)
	d.mu.Unlock()

	s.offset--
	if s.offset+s.width <= 0 {
		s.offset = Width
		return true
	}
	return false
}
