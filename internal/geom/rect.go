package geom

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) Area() float64   { return r.W * r.H }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.Right() && py >= r.Y && py <= r.Bottom()
}

// Intersect returns the overlap of r and o, or the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset grows r by dx horizontally and dy vertically on each side.
// Negative values shrink it.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}

// ScaleAboutCenter scales r by s keeping its center fixed.
func (r Rect) ScaleAboutCenter(s float64) Rect {
	cx, cy := r.Center()
	w, h := r.W*s, r.H*s
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Offset translates r.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Lerp interpolates every edge of a toward b by t.
func Lerp(a, b Rect, t float64) Rect {
	return Rect{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		W: a.W + (b.W-a.W)*t,
		H: a.H + (b.H-a.H)*t,
	}
}
