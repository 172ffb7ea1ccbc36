package display

import (
	"math"
	"math/bits"
)

// Rectangle is an axis-aligned rectangle with its top-left corner at (X, Y).
type Rectangle struct {
	X, Y int
	W, H int
}

// Rect returns the w x h rectangle at (x, y).
func Rect(x, y, w, h int) Rectangle { return Rectangle{X: x, Y: y, W: w, H: h} }

// Stroke selects how a rectangle is drawn: as nested outlines or filled.
type Stroke struct {
	width  int
	filled bool
}

// Outline draws width nested outlines, each one pixel inside the previous.
func Outline(width int) Stroke { return Stroke{width: width} }

// Filled fills the whole rectangle.
var Filled = Stroke{filled: true}

// Width returns the number of outline layers; zero when filled.
func (s Stroke) Width() int {
	if s.filled {
		return 0
	}
	return s.width
}

// IsFilled reports whether s fills the rectangle.
func (s Stroke) IsFilled() bool { return s.filled }

// DrawRectangle draws the w x h rectangle at (x, y) with stroke s.
func (d *Display) DrawRectangle(x, y, w, h int, c RGB, s Stroke) {
	d.mu.Lock()
	d.rectangle(x, y, w, h, c, s)
	d.mu.Unlock()
}

// DrawRect draws r with stroke s.
func (d *Display) DrawRect(r Rectangle, c RGB, s Stroke) {
	d.DrawRectangle(r.X, r.Y, r.W, r.H, c, s)
}

// DrawRectangleFilled sets every pixel of [x, x+w) x [y, y+h) inside the
// matrix to c.
func (d *Display) DrawRectangleFilled(x, y, w, h int, c RGB) {
	d.DrawRectangle(x, y, w, h, c, Filled)
}

// DrawRectFilled fills r.
func (d *Display) DrawRectFilled(r Rectangle, c RGB) {
	d.DrawRectangle(r.X, r.Y, r.W, r.H, c, Filled)
}

// DrawSquare draws the size x size square at (x, y) with stroke s.
func (d *Display) DrawSquare(x, y, size int, c RGB, s Stroke) {
	d.DrawRectangle(x, y, size, size, c, s)
}

// DrawSquareFilled fills the size x size square at (x, y).
func (d *Display) DrawSquareFilled(x, y, size int, c RGB) {
	d.DrawRectangle(x, y, size, size, c, Filled)
}

// DrawCircle draws the outline of a circle. Each pixel follows the midpoint
// rule: in column offset a the circle takes the largest b whose lower
// midpoint (a, b-1/2) lies inside or on the circle, mirrored over the eight
// octants. A zero radius draws the center only.
func (d *Display) DrawCircle(cx, cy, r int, c RGB) {
	d.mu.Lock()
	d.circle(cx, cy, r, c)
	d.mu.Unlock()
}

// DrawCircleFilled draws a disc. Every row is one horizontal span reaching
// the outermost outline pixel of that row, so the disc covers the outline.
func (d *Display) DrawCircleFilled(cx, cy, r int, c RGB) {
	d.mu.Lock()
	d.disc(cx, cy, r, c)
	d.mu.Unlock()
}

// DrawLine draws a line from (x1, y1) to (x2, y2) inclusive. A width above
// one repeats the line shifted across its minor axis.
func (d *Display) DrawLine(x1, y1, x2, y2 int, c RGB, width int) {
	if width <= 0 {
		return
	}
	d.mu.Lock()
	d.line(x1, y1, x2, y2, c, width)
	d.mu.Unlock()
}

func (d *Display) rectangle(x, y, w, h int, c RGB, s Stroke) {
	if w <= 0 || h <= 0 {
		return
	}
	if s.filled {
		d.fillRect(x, y, w, h, c)
		return
	}
	// Layers that still enclose the whole matrix draw nothing.
	start := maxInt(0, minInt(minInt(-x, -y), minInt(x+w-Width, y+h-Height)))
	for i := start; i < s.width; i++ {
		lx, ly, lw, lh := x+i, y+i, w-2*i, h-2*i
		if lw <= 0 || lh <= 0 || lx >= Width || ly >= Height || lx+lw <= 0 || ly+lh <= 0 {
			return
		}
		d.outline(lx, ly, lw, lh, c)
	}
}

func (d *Display) outline(x, y, w, h int, c RGB) {
	for i := maxInt(x, 0); i < minInt(x+w, Width); i++ {
		d.set(i, y, c)
		d.set(i, y+h-1, c)
	}
	for j := maxInt(y+1, 0); j < minInt(y+h-1, Height); j++ {
		d.set(x, j, c)
		d.set(x+w-1, j, c)
	}
}

func (d *Display) fillRect(x, y, w, h int, c RGB) {
	x0, y0 := maxInt(x, 0), maxInt(y, 0)
	x1, y1 := minInt(x+w, Width), minInt(y+h, Height)
	for yy := y0; yy < y1; yy++ {
		row := d.frame[yy*Width : yy*Width+Width]
		for xx := x0; xx < x1; xx++ {
			row[xx] = c
		}
	}
}

// circle visits the matrix columns for the steep octants and the matrix rows
// for the flat ones, so the work does not depend on the radius.
func (d *Display) circle(cx, cy, r int, c RGB) {
	if r < 0 {
		return
	}
	if r == 0 {
		d.set(cx, cy, c)
		return
	}
	for x := 0; x < Width; x++ {
		a := absInt(x - cx)
		if b := arc(r, a); b >= a {
			d.set(x, cy+b, c)
			d.set(x, cy-b, c)
		}
	}
	for y := 0; y < Height; y++ {
		b := absInt(y - cy)
		if a := arc(r, b); a >= b {
			d.set(cx+a, y, c)
			d.set(cx-a, y, c)
		}
	}
}

func (d *Display) disc(cx, cy, r int, c RGB) {
	if r < 0 {
		return
	}
	if r == 0 {
		d.set(cx, cy, c)
		return
	}
	for y := 0; y < Height; y++ {
		if h := discSpan(r, absInt(y-cy)); h >= 0 {
			d.hline(cx-h, cx+h, y, c)
		}
	}
}

// arc returns the largest b with a² + b² - b < r², or -1 when a >= r.
func arc(r, a int) int {
	if a >= r {
		return -1
	}
	n := squareDiff(r, a)
	b := n.sqrt()
	if mul128(b, b+1).less(n) {
		b++
	}
	return int(b)
}

// discSpan returns the half width of the disc row at offset b from the
// center, or -1 when the row is empty. The disc holds every (a, b) with
// a² + b² - max(a, b) < r², which contains both octant families of arc.
func discSpan(r, b int) int {
	if b > r {
		return -1
	}
	if a := arc(r, b); a > b {
		return a
	}
	// b >= 1 here; the remaining columns satisfy a <= b and a² < r² - b² + b.
	n := squareDiff(r, b).add(uint64(b) - 1)
	return minInt(int(n.sqrt()), b)
}

func (d *Display) hline(x0, x1, y int, c RGB) {
	if y < 0 || y >= Height {
		return
	}
	for x := maxInt(x0, 0); x <= x1 && x < Width; x++ {
		d.frame[y*Width+x] = c
	}
}

// line rasterizes the segment one major-axis step at a time. The minor
// coordinate of step k is k*minor/major rounded to nearest, so only the
// steps that land on the matrix are visited.
func (d *Display) line(x0, y0, x1, y1 int, c RGB, width int) {
	lo, hi := -(width-1)/2, width/2
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := direction(x0, x1), direction(y0, y1)
	if dx >= dy {
		k0, k1 := visibleSteps(x0, sx, dx, Width)
		for k := k0; k <= k1; k++ {
			x := x0 + sx*k
			y := y0 + sy*lineStep(k, dy, dx)
			for yy := maxInt(y+lo, 0); yy <= y+hi && yy < Height; yy++ {
				d.frame[yy*Width+x] = c
			}
		}
		return
	}
	k0, k1 := visibleSteps(y0, sy, dy, Height)
	for k := k0; k <= k1; k++ {
		y := y0 + sy*k
		x := x0 + sx*lineStep(k, dx, dy)
		for xx := maxInt(x+lo, 0); xx <= x+hi && xx < Width; xx++ {
			d.frame[y*Width+xx] = c
		}
	}
}

func direction(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}

// visibleSteps returns the steps k in [0, n] for which p+s*k falls in
// [0, limit). The range is empty when lo > hi.
func visibleSteps(p, s, n, limit int) (lo, hi int) {
	if s > 0 {
		lo, hi = -p, limit-1-p
	} else {
		lo, hi = p-(limit-1), p
	}
	return maxInt(lo, 0), minInt(hi, n)
}

// lineStep returns k*num/den rounded half away from the start point.
// num <= den.
func lineStep(k, num, den int) int {
	if k == 0 || num == 0 {
		return 0
	}
	// (2*k*num + den) / (2*den)
	n := mul128(uint64(k), uint64(num))
	n = u128{hi: n.hi<<1 | n.lo>>63, lo: n.lo << 1}.add(uint64(den))
	q, _ := bits.Div64(n.hi, n.lo, uint64(den)<<1)
	return int(q)
}

// u128 holds the squares of coordinates far outside the matrix.
type u128 struct{ hi, lo uint64 }

func mul128(a, b uint64) u128 {
	hi, lo := bits.Mul64(a, b)
	return u128{hi: hi, lo: lo}
}

// squareDiff returns r² - a² for 0 <= a <= r.
func squareDiff(r, a int) u128 { return mul128(uint64(r-a), uint64(r+a)) }

func (u u128) add(v uint64) u128 {
	lo, carry := bits.Add64(u.lo, v, 0)
	return u128{hi: u.hi + carry, lo: lo}
}

func (u u128) less(v u128) bool {
	return u.hi < v.hi || u.hi == v.hi && u.lo < v.lo
}

// sqrt returns floor(sqrt(u)) by Newton's method from above. u < 2^127.
func (u u128) sqrt() uint64 {
	if u.hi == 0 && u.lo < 2 {
		return u.lo
	}
	n := 128 - bits.LeadingZeros64(u.lo)
	if u.hi != 0 {
		n = 128 - bits.LeadingZeros64(u.hi)
	} else {
		n -= 64
	}
	x := uint64(math.MaxUint64)
	if e := (n + 1) / 2; e < 64 {
		x = 1 << e
	}
	for {
		q, _ := bits.Div64(u.hi, u.lo, x)
		s, carry := bits.Add64(x, q, 0)
		y := s>>1 | carry<<63
		if y >= x {
			return x
		}
		x = y
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
