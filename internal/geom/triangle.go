package geom

// Triangle is an immutable, consistently wound triangle with a packed
// 0xRRGGBB color. The zero value is a degenerate triangle at the origin.
type Triangle struct {
	v0, v1, v2 Point
	color      uint32
}

// NewTriangle builds a triangle from raw vertices, normalizing the winding
// so that every vertex order yields the same inside test.
func NewTriangle(p0, p1, p2 Point, color uint32) Triangle {
	v0, v1, v2 := Normalize(p0, p1, p2)
	return Triangle{v0: v0, v1: v1, v2: v2, color: color}
}

// V0 returns the first vertex. It is always the first vertex given to
// NewTriangle.
func (t Triangle) V0() Point { return t.v0 }

// V1 returns the second vertex in normalized order.
func (t Triangle) V1() Point { return t.v1 }

// V2 returns the third vertex in normalized order.
func (t Triangle) V2() Point { return t.v2 }

// Color returns the packed 0xRRGGBB fill color.
func (t Triangle) Color() uint32 { return t.color }

// InRange reports whether all three vertices are within ±MaxCoord, so the
// int64 EdgeValue is exact against any on-screen point.
func (t Triangle) InRange() bool {
	return t.v0.InRange() && t.v1.InRange() && t.v2.InRange()
}

// Vertices returns the normalized vertices in draw order.
func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.v0, t.v1, t.v2}
}

// Contains reports whether p passes all three half-plane tests. Points on
// an edge count as inside, so adjacent triangles both claim their shared edge.
func (t Triangle) Contains(p Point) bool {
	return Edge(t.v0, t.v1, p) && Edge(t.v1, t.v2, p) && Edge(t.v2, t.v0, p)
}

// Bounds returns the inclusive axis-aligned bounding box of the vertices.
func (t Triangle) Bounds() Rect {
	return Rect{
		Min: Point{X: min(t.v0.X, t.v1.X, t.v2.X), Y: min(t.v0.Y, t.v1.Y, t.v2.Y)},
		Max: Point{X: max(t.v0.X, t.v1.X, t.v2.X), Y: max(t.v0.Y, t.v1.Y, t.v2.Y)},
	}
}

// Degenerate reports whether the triangle has zero area.
func (t Triangle) Degenerate() bool {
	return EdgeSign(t.v0, t.v1, t.v2) == 0
}
