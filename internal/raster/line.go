package raster

import (
	"math"
	"math/big"

	"triangle-rasterizer/internal/geom"
)

// DrawLine paints the 8-connected Bresenham path from p0 to p1, both
// endpoints included. Endpoints are put in a canonical order first so that
// drawing p1→p0 visits exactly the same pixels.
//
// Only the stretch of the path that crosses the buffer is walked: the
// major axis is clipped to the buffer and the minor coordinate of each
// remaining step is computed directly, so a far off-screen endpoint costs
// no more than an on-screen one.
func (r *Rasterizer) DrawLine(p0, p1 geom.Point, c uint32) {
	r.stats.Lines++
	if p1.X < p0.X || (p1.X == p0.X && p1.Y < p0.Y) {
		p0, p1 = p1, p0
	}
	if p0.InRange() && p1.InRange() {
		r.drawLine(p0, p1, c)
	} else {
		r.drawLineWide(p0, p1, c)
	}
}

// minorSteps returns how many minor-axis steps the Bresenham walk has taken
// after n major-axis steps, for a line spanning major×minor pixels with
// major >= minor. It reproduces the error-term loop
//
//	err = dx + dy; e2 = 2*err; if e2 >= dy {x++}; if e2 <= dx {y++}
//
// in closed form: floor((major + 2*n*minor) / (2*major)).
func minorSteps(n, major, minor int64) int64 {
	if major == 0 {
		return 0
	}
	return (major + 2*n*minor) / (2 * major)
}

// drawLine handles endpoints within ±MaxCoord, where every intermediate
// product fits in int64. p0.X <= p1.X.
func (r *Rasterizer) drawLine(p0, p1 geom.Point, c uint32) {
	fb := r.fb
	w, h := int64(fb.Width), int64(fb.Height)
	x0, y0 := int64(p0.X), int64(p0.Y)
	dx := int64(p1.X) - x0
	dy := int64(p1.Y) - y0
	sy := int64(1)
	if dy < 0 {
		sy, dy = -1, -dy
	}

	written := 0
	if dx >= dy {
		lo, hi := max(0, -x0), min(dx, w-1-x0)
		for n := lo; n <= hi; n++ {
			y := y0 + sy*minorSteps(n, dx, dy)
			if y >= 0 && y < h {
				fb.Pix[int(y)*fb.Width+int(x0+n)] = c
				written++
			}
		}
	} else {
		lo, hi := max(0, -y0), min(dy, h-1-y0)
		if sy < 0 {
			lo, hi = max(0, y0-(h-1)), min(dy, y0)
		}
		for n := lo; n <= hi; n++ {
			x := x0 + minorSteps(n, dy, dx)
			if x >= 0 && x < w {
				fb.Pix[int(y0+sy*n)*fb.Width+int(x)] = c
				written++
			}
		}
	}

	r.stats.Written += written
	r.stats.Clipped += int(max(dx, dy)+1) - written
}

// drawLineWide is drawLine in arbitrary precision, for endpoints beyond
// ±MaxCoord. Only the clipped stretch is visited, so at most
// max(Width, Height) big-number steps are taken.
func (r *Rasterizer) drawLineWide(p0, p1 geom.Point, c uint32) {
	fb := r.fb
	x0, y0 := big.NewInt(int64(p0.X)), big.NewInt(int64(p0.Y))
	dx := new(big.Int).Sub(big.NewInt(int64(p1.X)), x0)
	dy := new(big.Int).Sub(big.NewInt(int64(p1.Y)), y0)
	sy := int64(1)
	if dy.Sign() < 0 {
		sy = -1
		dy.Neg(dy)
	}

	// Walk along the major axis; the minor axis position is start+dir*steps.
	xMajor := dx.Cmp(dy) >= 0
	major, minor := dx, dy
	majorStart, minorStart := x0, y0
	majorDir, minorDir := int64(1), sy
	majorLimit, minorLimit := int64(fb.Width), int64(fb.Height)
	if !xMajor {
		major, minor = dy, dx
		majorStart, minorStart = y0, x0
		majorDir, minorDir = sy, 1
		majorLimit, minorLimit = int64(fb.Height), int64(fb.Width)
	}

	// Visible step range [lo, hi] on the major axis.
	var lo, hi big.Int
	if majorDir > 0 {
		lo.Neg(majorStart)
		hi.Sub(big.NewInt(majorLimit-1), majorStart)
	} else {
		lo.Sub(majorStart, big.NewInt(majorLimit-1))
		hi.Set(majorStart)
	}
	if lo.Sign() < 0 {
		lo.SetInt64(0)
	}
	if hi.Cmp(major) > 0 {
		hi.Set(major)
	}

	written := 0
	if lo.Cmp(&hi) <= 0 {
		count := new(big.Int).Sub(&hi, &lo).Int64()
		twoMajor := new(big.Int).Lsh(major, 1)
		var n, num, steps, pos big.Int
		for i := int64(0); i <= count; i++ {
			n.Add(&lo, big.NewInt(i))
			if major.Sign() == 0 {
				steps.SetInt64(0)
			} else {
				num.Mul(&n, minor)
				num.Lsh(&num, 1)
				num.Add(&num, major)
				steps.Quo(&num, twoMajor)
			}
			pos.Mul(&steps, big.NewInt(minorDir))
			pos.Add(&pos, minorStart)
			if pos.Sign() < 0 || pos.Cmp(big.NewInt(minorLimit)) >= 0 {
				continue
			}
			m := new(big.Int).Mul(&n, big.NewInt(majorDir))
			m.Add(m, majorStart)
			x, y := m.Int64(), pos.Int64()
			if !xMajor {
				x, y = y, x
			}
			fb.Pix[int(y)*fb.Width+int(x)] = c
			written++
		}
	}

	r.stats.Written += written
	total := new(big.Int).Add(major, big.NewInt(1))
	total.Sub(total, big.NewInt(int64(written)))
	if total.IsInt64() && total.Int64() <= math.MaxInt-int64(r.stats.Clipped) {
		r.stats.Clipped += int(total.Int64())
	} else {
		r.stats.Clipped = math.MaxInt
	}
}
