package trilist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"triangle-rasterizer/internal/geom"
)

func TestReadTable(t *testing.T) {
	src := `x1,y1,x2,y2,x3,y3,color
0,0,10,0,0,10,16711680
100, 100, 200, 150, 120, 300, 0x00FF00

5,5,50,5,5,50,#0000ff
`
	tris, err := Read(strings.NewReader(src), "inline")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tris) != 3 {
		t.Fatalf("got %d triangles, want 3", len(tris))
	}

	wantColors := []uint32{0xFF0000, 0x00FF00, 0x0000FF}
	for i, tri := range tris {
		if tri.Color() != wantColors[i] {
			t.Errorf("triangle %d color = %#06x, want %#06x", i, tri.Color(), wantColors[i])
		}
		if !geom.Edge(tri.V0(), tri.V1(), tri.V2()) {
			t.Errorf("triangle %d not normalized", i)
		}
	}
	if tris[0].V1() != geom.Pt(0, 10) {
		t.Errorf("first triangle should have been rewound, got V1 = %v", tris[0].V1())
	}
}

func TestReadColumnsByName(t *testing.T) {
	src := "color,x3,y3,x2,y2,x1,y1,label\n255,1,2,3,4,5,6,ignored\n"
	recs, err := ReadRecords(strings.NewReader(src), "inline")
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	want := Record{X1: 5, Y1: 6, X2: 3, Y2: 4, X3: 1, Y3: 2, Color: 255}
	if len(recs) != 1 || recs[0] != want {
		t.Errorf("got %+v, want %+v", recs, want)
	}
}

func TestReadEmpty(t *testing.T) {
	tris, err := Read(strings.NewReader(""), "empty")
	if err != nil || len(tris) != 0 {
		t.Errorf("Read(empty) = %v, %v", tris, err)
	}
	tris, err = Read(strings.NewReader("x1,y1,x2,y2,x3,y3,color\n"), "header-only")
	if err != nil || len(tris) != 0 {
		t.Errorf("Read(header only) = %v, %v", tris, err)
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"missing column", "x1,y1,x2,y2,x3,color\n1,2,3,4,5,6\n", `missing column "y3"`},
		{"short row", "x1,y1,x2,y2,x3,y3,color\n1,2,3,4,5,6\n", "line 2"},
		{"non numeric", "x1,y1,x2,y2,x3,y3,color\n0,0,0,0,0,0,1\n1,two,3,4,5,6,7\n", "line 3"},
		{"bad color", "x1,y1,x2,y2,x3,y3,color\n1,2,3,4,5,6,red\n", "color"},
		{"color overflow", "x1,y1,x2,y2,x3,y3,color\n1,2,3,4,5,6,4294967296\n", "color"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.src), "bad.csv")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("error %v is not ErrMalformed", err)
			}
			if !strings.Contains(err.Error(), tc.want) || !strings.Contains(err.Error(), "bad.csv") {
				t.Errorf("error %q should mention %q and the file name", err, tc.want)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangles.csv")
	if err := os.WriteFile(path, []byte("x1,y1,x2,y2,x3,y3,color\n1,1,9,1,1,9,255\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tris, err := Parse(path)
	if err != nil || len(tris) != 1 {
		t.Fatalf("Parse = %v, %v", tris, err)
	}

	if _, err := Parse(filepath.Join(t.TempDir(), "missing.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Parse(missing) = %v, want ErrNotExist", err)
	}
}

func TestFromArgs(t *testing.T) {
	tri, err := FromArgs([]string{"0", "0", "10", "0", "0", "10"})
	if err != nil {
		t.Fatalf("FromArgs: %v", err)
	}
	if tri.Color() != DefaultColor {
		t.Errorf("color = %#06x, want white", tri.Color())
	}
	if !geom.Edge(tri.V0(), tri.V1(), tri.V2()) {
		t.Error("triangle not normalized")
	}

	tri, err = FromArgs([]string{"0", "0", "10", "0", "0", "10", "0xFF0000"})
	if err != nil || tri.Color() != 0xFF0000 {
		t.Errorf("FromArgs with color = %v, %v", tri, err)
	}

	for _, args := range [][]string{
		{"1", "2", "3"},
		{"1", "2", "3", "4", "5", "x"},
		{"1", "2", "3", "4", "5", "6", "nope"},
	} {
		if _, err := FromArgs(args); !errors.Is(err, ErrMalformed) {
			t.Errorf("FromArgs(%v) = %v, want ErrMalformed", args, err)
		}
	}
}
