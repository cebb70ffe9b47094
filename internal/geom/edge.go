package geom

import "math/big"

// MaxCoord bounds the coordinates for which EdgeValue is exact. Inside
// ±MaxCoord every difference fits in 31 bits and every product in 62, so
// the int64 arithmetic cannot overflow.
const MaxCoord = 1 << 29

// InRange reports whether both coordinates of p are within ±MaxCoord.
func (p Point) InRange() bool {
	return p.X >= -MaxCoord && p.X <= MaxCoord && p.Y >= -MaxCoord && p.Y <= MaxCoord
}

// EdgeValue returns the 2D cross product of a→b and a→c:
//
//	(c.x-a.x)*(b.y-a.y) - (c.y-a.y)*(b.x-a.x)
//
// The result is exact when all three points are InRange. Callers that may
// see larger coordinates and only need the sign use EdgeSign.
func EdgeValue(a, b, c Point) int64 {
	return (int64(c.X)-int64(a.X))*(int64(b.Y)-int64(a.Y)) -
		(int64(c.Y)-int64(a.Y))*(int64(b.X)-int64(a.X))
}

// EdgeSign returns -1, 0 or +1 as the sign of EdgeValue, exactly, for any
// coordinates. Points outside ±MaxCoord fall back to arbitrary precision.
func EdgeSign(a, b, c Point) int {
	if a.InRange() && b.InRange() && c.InRange() {
		switch v := EdgeValue(a, b, c); {
		case v > 0:
			return 1
		case v < 0:
			return -1
		}
		return 0
	}
	return edgeSignWide(a, b, c)
}

func edgeSignWide(a, b, c Point) int {
	sub := func(p, q int) *big.Int {
		return new(big.Int).Sub(big.NewInt(int64(p)), big.NewInt(int64(q)))
	}
	l := new(big.Int).Mul(sub(c.X, a.X), sub(b.Y, a.Y))
	r := new(big.Int).Mul(sub(c.Y, a.Y), sub(b.X, a.X))
	return l.Cmp(r)
}

// Edge reports whether c lies on the inside of the directed line a→b, or
// exactly on it.
func Edge(a, b, c Point) bool {
	return EdgeSign(a, b, c) >= 0
}

// Normalize orders three vertices so that Edge(v0, v1, v2) holds, swapping
// the second and third vertex when the raw order has the opposite winding.
// Collinear input is returned unchanged.
func Normalize(p0, p1, p2 Point) (v0, v1, v2 Point) {
	if !Edge(p0, p1, p2) {
		return p0, p2, p1
	}
	return p0, p1, p2
}
