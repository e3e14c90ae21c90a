package vmath

// Size is element width and height in points
type Size struct {
	W, H float64
}

// Insets shrinks a Rect from each side
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Rect is an axis-aligned rectangle, origin at top-left, Y grows downward
type Rect struct {
	X, Y, W, H float64
}

func NewRect(origin Vec2, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: size.W, H: size.H}
}

func (r Rect) Origin() Vec2 { return Vec2{r.X, r.Y} }
func (r Rect) Size() Size   { return Size{r.W, r.H} }

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MidX() float64 { return r.X + r.W/2 }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.H }
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// Inset returns r shrunk by in, the result may have negative size
// Callers needing a valid rect use Canon
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
}

// Canon normalizes negative width/height so that MinX <= MaxX and MinY <= MaxY
// A collapsed axis keeps its midpoint and gets zero extent
func (r Rect) Canon() Rect {
	if r.W < 0 {
		r.X += r.W / 2
		r.W = 0
	}
	if r.H < 0 {
		r.Y += r.H / 2
		r.H = 0
	}
	return r
}

// Contains reports whether p lies inside r, right/bottom edges exclusive
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// WithOrigin returns r moved to origin, size unchanged
func (r Rect) WithOrigin(origin Vec2) Rect {
	r.X, r.Y = origin.X, origin.Y
	return r
}
