package trilist

import (
	"errors"

	"triangle-rasterizer/internal/geom"
)

// ErrMalformed classifies records that cannot be turned into a triangle.
var ErrMalformed = errors.New("malformed triangle record")

// DefaultColor is used for triangles given without an explicit color.
const DefaultColor uint32 = 0xFFFFFF

// Record is one row of a triangle table before winding normalization.
type Record struct {
	X1, Y1 int
	X2, Y2 int
	X3, Y3 int
	Color  uint32
}

// Triangle normalizes the record into a drawable triangle.
func (r Record) Triangle() geom.Triangle {
	return geom.NewTriangle(geom.Pt(r.X1, r.Y1), geom.Pt(r.X2, r.Y2), geom.Pt(r.X3, r.Y3), r.Color)
}

// columns is the header order of a triangle table.
var columns = [7]string{"x1", "y1", "x2", "y2", "x3", "y3", "color"}
