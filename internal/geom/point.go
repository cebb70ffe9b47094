package geom

// Point is an integer screen-space coordinate. It may lie outside any buffer.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rect is an inclusive integer rectangle: both Min and Max are inside it.
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersect returns the overlap of r and s. ok is false when they are disjoint.
func (r Rect) Intersect(s Rect) (out Rect, ok bool) {
	out.Min.X = max(r.Min.X, s.Min.X)
	out.Min.Y = max(r.Min.Y, s.Min.Y)
	out.Max.X = min(r.Max.X, s.Max.X)
	out.Max.Y = min(r.Max.Y, s.Max.Y)
	if out.Min.X > out.Max.X || out.Min.Y > out.Max.Y {
		return Rect{}, false
	}
	return out, true
}
