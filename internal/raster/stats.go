package raster

import "fmt"

// Stats counts rasterizer work since the last reset.
type Stats struct {
	Triangles int // triangles drawn
	Lines     int // line segments drawn
	Written   int // pixel writes that landed in the buffer
	Clipped   int // pixel writes skipped as out of bounds
}

func (s Stats) String() string {
	return fmt.Sprintf("triangles=%d lines=%d written=%d clipped=%d",
		s.Triangles, s.Lines, s.Written, s.Clipped)
}
