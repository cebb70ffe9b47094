package geom

import (
	"math"
	"math/rand"
	"testing"
)

func TestEdgeValue(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point
		want    int64
	}{
		{"right of x axis", Pt(0, 0), Pt(10, 0), Pt(0, 10), -100},
		{"left of y axis", Pt(0, 0), Pt(0, 10), Pt(10, 0), 100},
		{"on line", Pt(0, 0), Pt(10, 10), Pt(5, 5), 0},
		{"coincident", Pt(3, 3), Pt(3, 3), Pt(3, 3), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EdgeValue(tc.a, tc.b, tc.c); got != tc.want {
				t.Errorf("EdgeValue(%v, %v, %v) = %d, want %d", tc.a, tc.b, tc.c, got, tc.want)
			}
			if got, want := Edge(tc.a, tc.b, tc.c), tc.want >= 0; got != want {
				t.Errorf("Edge(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.c, got, want)
			}
		})
	}
}

func TestEdgeValueAtMaxCoord(t *testing.T) {
	m := MaxCoord
	got := EdgeValue(Pt(-m, -m), Pt(m, -m), Pt(-m, m))
	want := -int64(2*m) * int64(2*m)
	if got != want {
		t.Errorf("EdgeValue at ±MaxCoord = %d, want %d", got, want)
	}
}

func TestEdgeSignWideCoordinates(t *testing.T) {
	const g = 4_000_000_000
	tests := []struct {
		name    string
		a, b, c Point
		want    int
	}{
		{"screen inside huge ccw edge", Pt(-g, -g), Pt(g, -g), Pt(50, 50), -1},
		{"screen inside huge edge reversed", Pt(g, -g), Pt(-g, -g), Pt(50, 50), 1},
		{"collinear far points", Pt(-3*g, -3*g), Pt(3*g, 3*g), Pt(7, 7), 0},
		{"extreme int64 range", Pt(math.MinInt64/2, 0), Pt(math.MaxInt64/2, 0), Pt(0, 1), -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EdgeSign(tc.a, tc.b, tc.c); got != tc.want {
				t.Errorf("EdgeSign(%v, %v, %v) = %d, want %d", tc.a, tc.b, tc.c, got, tc.want)
			}
		})
	}
}

func TestEdgeSignPathsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	coord := func() int { return rng.Intn(2*MaxCoord+1) - MaxCoord }
	for i := 0; i < 5000; i++ {
		a, b, c := Pt(coord(), coord()), Pt(coord(), coord()), Pt(coord(), coord())
		if fast, wide := EdgeSign(a, b, c), edgeSignWide(a, b, c); fast != wide {
			t.Fatalf("EdgeSign(%v, %v, %v): int64 path %d, wide path %d", a, b, c, fast, wide)
		}
	}
}

func TestHugeTriangleContainsScreen(t *testing.T) {
	const g = 4_000_000_000
	tri := NewTriangle(Pt(-g, -g), Pt(g, -g), Pt(0, g), 1)
	if tri.InRange() {
		t.Fatal("triangle should be outside the int64 fast range")
	}
	if !Edge(tri.V0(), tri.V1(), tri.V2()) {
		t.Fatal("huge triangle not normalized")
	}
	for _, p := range []Point{Pt(0, 0), Pt(50, 50), Pt(799, 799)} {
		if !tri.Contains(p) {
			t.Errorf("huge triangle does not contain %v", p)
		}
	}
	if tri.Degenerate() {
		t.Error("huge triangle reported degenerate")
	}
}

func TestNormalizeSwapsOppositeWinding(t *testing.T) {
	v0, v1, v2 := Normalize(Pt(0, 0), Pt(10, 0), Pt(0, 10))
	if v0 != Pt(0, 0) || v1 != Pt(0, 10) || v2 != Pt(10, 0) {
		t.Errorf("Normalize = %v %v %v, want second and third swapped", v0, v1, v2)
	}

	v0, v1, v2 = Normalize(Pt(0, 0), Pt(0, 10), Pt(10, 0))
	if v0 != Pt(0, 0) || v1 != Pt(0, 10) || v2 != Pt(10, 0) {
		t.Errorf("Normalize = %v %v %v, want order kept", v0, v1, v2)
	}
}

func TestWindingInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		p0 := Pt(rng.Intn(1600)-400, rng.Intn(1600)-400)
		p1 := Pt(rng.Intn(1600)-400, rng.Intn(1600)-400)
		p2 := Pt(rng.Intn(1600)-400, rng.Intn(1600)-400)
		tri := NewTriangle(p0, p1, p2, 0)
		if !Edge(tri.V0(), tri.V1(), tri.V2()) {
			t.Fatalf("triangle %v %v %v not normalized", p0, p1, p2)
		}
	}
}

func TestContainsOwnVertices(t *testing.T) {
	tris := []Triangle{
		NewTriangle(Pt(0, 0), Pt(10, 0), Pt(0, 10), 1),
		NewTriangle(Pt(100, 20), Pt(5, 300), Pt(400, 399), 2),
		NewTriangle(Pt(-5, -5), Pt(40, 2), Pt(3, 60), 3),
	}
	for _, tri := range tris {
		for _, v := range tri.Vertices() {
			if !tri.Contains(v) {
				t.Errorf("%v does not contain its vertex %v", tri, v)
			}
		}
	}
}

func TestContainsIsIndependentOfInputOrder(t *testing.T) {
	a, b, c := Pt(2, 1), Pt(30, 8), Pt(9, 27)
	orders := [][3]Point{{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a}}
	ref := NewTriangle(a, b, c, 0)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			p := Pt(x, y)
			want := ref.Contains(p)
			for _, o := range orders {
				if got := NewTriangle(o[0], o[1], o[2], 0).Contains(p); got != want {
					t.Fatalf("order %v: Contains(%v) = %v, want %v", o, p, got, want)
				}
			}
		}
	}
}

func TestBoundsInclusive(t *testing.T) {
	tri := NewTriangle(Pt(4, -2), Pt(-3, 7), Pt(10, 1), 0)
	want := Rect{Min: Pt(-3, -2), Max: Pt(10, 7)}
	if got := tri.Bounds(); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
	if !want.Contains(Pt(10, 7)) || want.Contains(Pt(11, 7)) {
		t.Error("Rect.Contains should include Max and exclude beyond it")
	}
}

func TestRectIntersect(t *testing.T) {
	r := Rect{Min: Pt(-5, -5), Max: Pt(10, 10)}
	screen := Rect{Min: Pt(0, 0), Max: Pt(799, 799)}
	got, ok := r.Intersect(screen)
	if !ok || got != (Rect{Min: Pt(0, 0), Max: Pt(10, 10)}) {
		t.Errorf("Intersect = %v, %v", got, ok)
	}
	if _, ok := (Rect{Min: Pt(900, 900), Max: Pt(950, 950)}).Intersect(screen); ok {
		t.Error("disjoint rects should not intersect")
	}
}

func TestDegenerate(t *testing.T) {
	if !NewTriangle(Pt(0, 0), Pt(0, 0), Pt(0, 0), 0).Degenerate() {
		t.Error("point triangle should be degenerate")
	}
	if !NewTriangle(Pt(0, 0), Pt(5, 5), Pt(10, 10), 0).Degenerate() {
		t.Error("collinear triangle should be degenerate")
	}
	if NewTriangle(Pt(0, 0), Pt(10, 0), Pt(0, 10), 0).Degenerate() {
		t.Error("right triangle should not be degenerate")
	}
}
