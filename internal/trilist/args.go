package trilist

import (
	"fmt"
	"strconv"

	"triangle-rasterizer/internal/geom"
)

// FromArgs builds a single triangle from command-line arguments: six
// integer coordinates x1 y1 x2 y2 x3 y3 and an optional color. Without a
// color the triangle is white.
func FromArgs(args []string) (geom.Triangle, error) {
	if len(args) != 6 && len(args) != 7 {
		return geom.Triangle{}, fmt.Errorf("trilist: %w: want 6 coordinates and an optional color, got %d arguments", ErrMalformed, len(args))
	}

	var coords [6]int
	for i := range coords {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return geom.Triangle{}, fmt.Errorf("trilist: %w: argument %d (%s): %v", ErrMalformed, i+1, columns[i], err)
		}
		coords[i] = v
	}

	c := DefaultColor
	if len(args) == 7 {
		var err error
		if c, err = ParseColor(args[6]); err != nil {
			return geom.Triangle{}, fmt.Errorf("trilist: argument 7: %w", err)
		}
	}

	rec := Record{
		X1: coords[0], Y1: coords[1],
		X2: coords[2], Y2: coords[3],
		X3: coords[4], Y3: coords[5],
		Color: c,
	}
	return rec.Triangle(), nil
}
