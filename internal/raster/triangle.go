package raster

import "triangle-rasterizer/internal/geom"

// Mode selects what DrawTriangle paints.
type Mode int

const (
	// ModeFilled paints the outline and then the interior.
	ModeFilled Mode = iota
	// ModeWireframe paints the outline only.
	ModeWireframe
)

// Rasterizer draws triangles and lines into one framebuffer. It is not
// safe for concurrent use; give each goroutine its own buffer.
type Rasterizer struct {
	fb    *FrameBuffer
	mode  Mode
	stats Stats
}

// NewRasterizer returns a rasterizer that writes into fb.
func NewRasterizer(fb *FrameBuffer, mode Mode) *Rasterizer {
	return &Rasterizer{fb: fb, mode: mode}
}

// FrameBuffer returns the target buffer.
func (r *Rasterizer) FrameBuffer() *FrameBuffer { return r.fb }

// Stats returns the counters accumulated since the last ResetStats.
func (r *Rasterizer) Stats() Stats { return r.stats }

// ResetStats zeroes the counters.
func (r *Rasterizer) ResetStats() { r.stats = Stats{} }

// Render draws tris in order. Later triangles overwrite earlier pixels.
func (r *Rasterizer) Render(tris []geom.Triangle) {
	for _, t := range tris {
		r.DrawTriangle(t)
	}
}

// DrawTriangle paints the three edges of t and, in filled mode, its interior.
func (r *Rasterizer) DrawTriangle(t geom.Triangle) {
	r.stats.Triangles++
	c := t.Color()
	r.DrawLine(t.V0(), t.V1(), c)
	r.DrawLine(t.V1(), t.V2(), c)
	r.DrawLine(t.V2(), t.V0(), c)
	if r.mode == ModeFilled {
		r.FillTriangle(t)
	}
}

// FillTriangle scans the inclusive bounding box of t and writes its color
// at every pixel that passes the three edge tests. The box is first clipped
// to the buffer, so pixels off-screen are never visited.
func (r *Rasterizer) FillTriangle(t geom.Triangle) {
	box, ok := t.Bounds().Intersect(r.fb.Bounds())
	if !ok {
		return
	}

	v0, v1, v2 := t.V0(), t.V1(), t.V2()
	c := t.Color()
	fb := r.fb

	inside := t.Contains
	if t.InRange() {
		inside = func(p geom.Point) bool {
			return geom.EdgeValue(v0, v1, p) >= 0 &&
				geom.EdgeValue(v1, v2, p) >= 0 &&
				geom.EdgeValue(v2, v0, p) >= 0
		}
	}

	for y := box.Min.Y; y <= box.Max.Y; y++ {
		row := y * fb.Width
		for x := box.Min.X; x <= box.Max.X; x++ {
			if inside(geom.Point{X: x, Y: y}) {
				fb.Pix[row+x] = c
				r.stats.Written++
			}
		}
	}
}

func (r *Rasterizer) set(x, y int, c uint32) {
	if r.fb.SetPixel(x, y, c) {
		r.stats.Written++
	} else {
		r.stats.Clipped++
	}
}
