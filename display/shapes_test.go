package display

import "testing"

func TestDrawRectangleFilledExact(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
	}{
		{"inside", 2, 3, 4, 5},
		{"whole", 0, 0, Width, Height},
		{"clip left top", -2, -1, 5, 4},
		{"clip right bottom", 7, 9, 10, 10},
		{"single", 9, 11, 1, 1},
	}
	for _, tt := range tests {
		d, _ := newTestDisplay()
		d.DrawRectangleFilled(tt.x, tt.y, tt.w, tt.h, red)

		got := lit(d)
		want := 0
		for y := tt.y; y < tt.y+tt.h; y++ {
			for x := tt.x; x < tt.x+tt.w; x++ {
				if !inBounds(x, y) {
					continue
				}
				want++
				if !got[[2]int{x, y}] {
					t.Fatalf("%s: pixel (%d,%d) not set", tt.name, x, y)
				}
			}
		}
		if len(got) != want {
			t.Fatalf("%s: %d pixels set; want %d", tt.name, len(got), want)
		}
	}
}

func TestDrawRectangleStroke(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		s          Stroke
		want       int
	}{
		{"outline 4x3", 1, 1, 4, 3, Outline(1), 10},
		{"outline 1x1", 0, 0, 1, 1, Outline(1), 1},
		{"outline 5x1", 0, 0, 5, 1, Outline(1), 5},
		{"two layers 5x5", 0, 0, 5, 5, Outline(2), 24},
		{"three layers 5x5", 0, 0, 5, 5, Outline(3), 25},
		{"thick stroke stops at center", 0, 0, 4, 6, Outline(100), 24},
		{"filled", 0, 0, 5, 5, Filled, 25},
		{"zero stroke", 0, 0, 5, 5, Outline(0), 0},
		{"negative stroke", 0, 0, 5, 5, Outline(-1), 0},
		{"negative width", 5, 5, -3, 2, Outline(1), 0},
		{"zero height", 5, 5, 3, 0, Filled, 0},
	}
	for _, tt := range tests {
		d, _ := newTestDisplay()
		d.DrawRectangle(tt.x, tt.y, tt.w, tt.h, red, tt.s)
		if got := len(lit(d)); got != tt.want {
			t.Fatalf("%s: %d pixels set; want %d", tt.name, got, tt.want)
		}
	}
}

func TestDrawRectangleOutlineShape(t *testing.T) {
	d, _ := newTestDisplay()
	d.DrawRect(Rect(1, 1, 4, 3), red, Outline(1))
	for _, p := range [][2]int{{1, 1}, {4, 1}, {1, 2}, {4, 2}, {1, 3}, {4, 3}, {2, 3}} {
		if *d.At(p[0], p[1]) != red {
			t.Fatalf("border pixel %v not set", p)
		}
	}
	for _, p := range [][2]int{{2, 2}, {3, 2}, {0, 0}, {5, 1}} {
		if *d.At(p[0], p[1]) != Black {
			t.Fatalf("pixel %v set; want black", p)
		}
	}
}

func TestDrawSquare(t *testing.T) {
	a, _ := newTestDisplay()
	a.DrawSquare(2, 2, 4, red, Outline(1))
	b, _ := newTestDisplay()
	b.DrawRectangle(2, 2, 4, 4, red, Outline(1))
	if a.frame != b.frame {
		t.Fatal("DrawSquare differs from DrawRectangle")
	}

	a.DrawSquareFilled(0, 0, 3, green)
	b.DrawRectFilled(Rect(0, 0, 3, 3), green)
	if a.frame != b.frame {
		t.Fatal("DrawSquareFilled differs from DrawRectFilled")
	}
}

func TestStroke(t *testing.T) {
	if s := Outline(3); s.Width() != 3 || s.IsFilled() {
		t.Fatalf("Outline(3) = width %d filled %v; want 3 false", s.Width(), s.IsFilled())
	}
	if Filled.Width() != 0 || !Filled.IsFilled() {
		t.Fatalf("Filled = width %d filled %v; want 0 true", Filled.Width(), Filled.IsFilled())
	}
}

func TestDrawCircleSymmetric(t *testing.T) {
	d, _ := newTestDisplay()
	const cx, cy, r = 5, 5, 4
	d.DrawCircle(cx, cy, r, red)
	set := lit(d)

	for _, p := range [][2]int{{cx + r, cy}, {cx - r, cy}, {cx, cy + r}, {cx, cy - r}} {
		if !set[p] {
			t.Fatalf("axis point %v not set", p)
		}
	}
	if set[[2]int{cx, cy}] {
		t.Fatal("outline circle set its center")
	}
	for p := range set {
		dx, dy := p[0]-cx, p[1]-cy
		for _, q := range [][2]int{{cx - dx, cy + dy}, {cx + dx, cy - dy}, {cx + dy, cy + dx}} {
			if !set[q] {
				t.Fatalf("point %v set but its mirror %v is not", p, q)
			}
		}
	}
}

func TestDrawCircleFilledCoversOutline(t *testing.T) {
	for r := 0; r <= 4; r++ {
		o, _ := newTestDisplay()
		o.DrawCircle(5, 5, r, red)
		f, _ := newTestDisplay()
		f.DrawCircleFilled(5, 5, r, red)

		outline, filled := lit(o), lit(f)
		for p := range outline {
			if !filled[p] {
				t.Fatalf("r=%d: outline pixel %v missing from the disc", r, p)
			}
		}
		if r > 1 && !filled[[2]int{5, 5}] {
			t.Fatalf("r=%d: disc center not set", r)
		}
		// A disc row has no holes.
		for y := 0; y < Height; y++ {
			first, last := -1, -1
			for x := 0; x < Width; x++ {
				if filled[[2]int{x, y}] {
					if first < 0 {
						first = x
					}
					last = x
				}
			}
			for x := first; first >= 0 && x <= last; x++ {
				if !filled[[2]int{x, y}] {
					t.Fatalf("r=%d: gap at (%d,%d)", r, x, y)
				}
			}
		}
	}
}

func TestDrawCircleDegenerate(t *testing.T) {
	d, _ := newTestDisplay()
	d.DrawCircle(5, 5, -1, red)
	d.DrawCircleFilled(5, 5, -3, red)
	if n := len(lit(d)); n != 0 {
		t.Fatalf("negative radius lit %d pixels; want 0", n)
	}
	d.DrawCircle(5, 5, 0, red)
	if got := lit(d); len(got) != 1 || !got[[2]int{5, 5}] {
		t.Fatalf("radius 0 lit %v; want only (5,5)", got)
	}
}

func TestDrawCircleClipped(t *testing.T) {
	d, _ := newTestDisplay()
	d.DrawCircleFilled(0, 0, 20, red)
	if n := len(lit(d)); n != Pixels {
		t.Fatalf("huge disc lit %d pixels; want %d", n, Pixels)
	}
}

func TestDrawLineRow(t *testing.T) {
	d, _ := newTestDisplay()
	d.DrawLine(0, 0, Width-1, 0, red, 1)
	got := lit(d)
	if len(got) != Width {
		t.Fatalf("DrawLine row 0 lit %d pixels; want %d", len(got), Width)
	}
	for x := 0; x < Width; x++ {
		if !got[[2]int{x, 0}] {
			t.Fatalf("pixel (%d,0) not set", x)
		}
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		width          int
		want           [][2]int
	}{
		{"point", 3, 3, 3, 3, 1, [][2]int{{3, 3}}},
		{"diagonal", 0, 0, 3, 3, 1, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"reversed", 3, 0, 0, 0, 1, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical", 2, 1, 2, 3, 1, [][2]int{{2, 1}, {2, 2}, {2, 3}}},
		{"width 2 horizontal", 0, 5, 2, 5, 2, [][2]int{{0, 5}, {1, 5}, {2, 5}, {0, 6}, {1, 6}, {2, 6}}},
		{"width 3 vertical", 5, 0, 5, 1, 3, [][2]int{{4, 0}, {5, 0}, {6, 0}, {4, 1}, {5, 1}, {6, 1}}},
		{"clipped", -2, 0, 1, 0, 1, [][2]int{{0, 0}, {1, 0}}},
		{"zero width", 0, 0, 9, 0, 0, nil},
	}
	for _, tt := range tests {
		d, _ := newTestDisplay()
		d.DrawLine(tt.x1, tt.y1, tt.x2, tt.y2, red, tt.width)
		got := lit(d)
		if len(got) != len(tt.want) {
			t.Fatalf("%s: lit %d pixels; want %d", tt.name, len(got), len(tt.want))
		}
		for _, p := range tt.want {
			if !got[p] {
				t.Fatalf("%s: pixel %v not set", tt.name, p)
			}
		}
	}
}

func TestDrawLineThickRow(t *testing.T) {
	d, _ := newTestDisplay()
	d.DrawLine(0, 5, Width-1, 5, red, 3)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			want := y >= 4 && y <= 6
			if got := *d.At(x, y) == red; got != want {
				t.Fatalf("pixel (%d,%d) set=%v; want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawFarOffMatrix(t *testing.T) {
	const n = 1 << 40
	tests := []struct {
		name string
		draw func(d *Display)
		want int
	}{
		{"wide outline", func(d *Display) { d.DrawRectangle(0, 0, n, 4, red, Outline(1)) }, 2*Width + 2},
		{"enclosing layers", func(d *Display) { d.DrawRectangle(-n, -n, 2*n+Width, 2*n+Height, red, Outline(n+1)) }, 2*Width + 2*(Height-2)},
		{"layers beyond the matrix", func(d *Display) { d.DrawRectangle(-3, 0, n, n, red, Outline(n)) }, Pixels},
		{"long row", func(d *Display) { d.DrawLine(0, 0, n, 0, red, 1) }, Width},
		{"line from afar", func(d *Display) { d.DrawLine(-n, 5, Width-1, 5, red, 1) }, Width},
		{"line passing by", func(d *Display) { d.DrawLine(-n, -n, -n+3, n, red, 1) }, 0},
		{"huge width", func(d *Display) { d.DrawLine(0, 0, Width-1, 0, red, n) }, Pixels},
		{"thick diagonal", func(d *Display) { d.DrawLine(-n, -n, n, n, red, 2*n) }, Pixels},
		{"circle around", func(d *Display) { d.DrawCircle(5, 5, n, red) }, 0},
		{"disc around", func(d *Display) { d.DrawCircleFilled(5, 5, n, red) }, Pixels},
		{"circle far away", func(d *Display) { d.DrawCircle(n, n, 3, red) }, 0},
		{"arc of a far circle", func(d *Display) { d.DrawCircle(-n, 5, n+5, red) }, Height},
	}
	for _, tt := range tests {
		d, _ := newTestDisplay()
		tt.draw(d)
		if got := len(lit(d)); got != tt.want {
			t.Fatalf("%s: lit %d pixels; want %d", tt.name, got, tt.want)
		}
	}
}

func TestDrawOutlineClippedShape(t *testing.T) {
	d, _ := newTestDisplay()
	d.DrawRectangle(0, 0, 1<<40, 4, red, Outline(1))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			want := y == 0 || y == 3 || (x == 0 && y < 4)
			if got := *d.At(x, y) == red; got != want {
				t.Fatalf("pixel (%d,%d) set=%v; want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawCircleArcColumn(t *testing.T) {
	d, _ := newTestDisplay()
	d.DrawCircle(-1<<40, 5, 1<<40+5, red)
	for y := 0; y < Height; y++ {
		if *d.At(5, y) != red {
			t.Fatalf("pixel (5,%d) not set", y)
		}
	}
}

func TestDrawCircleRing(t *testing.T) {
	d, _ := newTestDisplay()
	d.DrawCircle(5, 5, 2, red)
	want := map[[2]int]bool{}
	for _, p := range [][2]int{{0, 2}, {1, 2}, {2, 0}, {2, 1}} {
		for _, s := range [][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}} {
			want[[2]int{5 + s[0]*p[0], 5 + s[1]*p[1]}] = true
		}
	}
	got := lit(d)
	if len(got) != len(want) {
		t.Fatalf("radius 2 lit %d pixels; want %d", len(got), len(want))
	}
	for p := range want {
		if !got[p] {
			t.Fatalf("pixel %v not set", p)
		}
	}
}

func TestLineStep(t *testing.T) {
	tests := []struct {
		k, num, den, want int
	}{
		{0, 3, 7, 0},
		{1, 1, 2, 1},
		{3, 1, 4, 1},
		{5, 5, 5, 5},
		{1 << 40, 1 << 40, 1 << 41, 1 << 39},
		{1<<40 + 1, 1, 2, 1<<39 + 1},
	}
	for _, tt := range tests {
		if got := lineStep(tt.k, tt.num, tt.den); got != tt.want {
			t.Fatalf("lineStep(%d, %d, %d) = %d; want %d", tt.k, tt.num, tt.den, got, tt.want)
		}
	}
}

func TestSqrt128(t *testing.T) {
	tests := []struct {
		u    u128
		want uint64
	}{
		{u128{}, 0},
		{u128{lo: 1}, 1},
		{u128{lo: 15}, 3},
		{u128{lo: 16}, 4},
		{mul128(1<<40, 1<<40), 1 << 40},
		{mul128(1<<40, 1<<40).add(1<<41), 1 << 40},
		{mul128(1<<62, 1<<62), 1 << 62},
	}
	for _, tt := range tests {
		if got := tt.u.sqrt(); got != tt.want {
			t.Fatalf("sqrt(%#x:%#x) = %d; want %d", tt.u.hi, tt.u.lo, got, tt.want)
		}
	}

	u := u128{hi: 1<<63 - 1, lo: 1<<64 - 1}
	s := u.sqrt()
	if u.less(mul128(s, s)) || !u.less(mul128(s+1, s+1)) {
		t.Fatalf("sqrt(2^127-1) = %d is not the floor", s)
	}
}
