package raster

import (
	"image"

	"golang.org/x/image/draw"

	"triangle-rasterizer/internal/geom"
)

// FrameBuffer is a flat, row-major grid of packed 0xRRGGBB colors with the
// origin at the top-left. The rasterizer writes into it in place and never
// resizes it.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint32 // len = Width*Height
}

// NewFrameBuffer allocates a zeroed (black) buffer. Negative dimensions are
// treated as zero.
func NewFrameBuffer(w, h int) *FrameBuffer {
	w, h = max(w, 0), max(h, 0)
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint32, w*h),
	}
}

// Index maps (x, y) to its offset in Pix. The result is only meaningful for
// coordinates that satisfy InBounds.
func (fb *FrameBuffer) Index(x, y int) int {
	return fb.Width*y + x
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (fb *FrameBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// Bounds returns the inclusive pixel rectangle of the buffer.
func (fb *FrameBuffer) Bounds() geom.Rect {
	return geom.Rect{Max: geom.Pt(fb.Width-1, fb.Height-1)}
}

// SetPixel writes c at (x, y). Writes outside the buffer are skipped and
// reported by returning false.
func (fb *FrameBuffer) SetPixel(x, y int, c uint32) bool {
	if !fb.InBounds(x, y) {
		return false
	}
	fb.Pix[fb.Index(x, y)] = c
	return true
}

// At returns the color at (x, y), or 0 outside the buffer.
func (fb *FrameBuffer) At(x, y int) uint32 {
	if !fb.InBounds(x, y) {
		return 0
	}
	return fb.Pix[fb.Index(x, y)]
}

// Clear fills the whole buffer with c.
func (fb *FrameBuffer) Clear(c uint32) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// Image converts the buffer to an opaque NRGBA image. The top byte of each
// packed color is ignored.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, c := range fb.Pix {
		o := i * 4
		img.Pix[o] = uint8(c >> 16)
		img.Pix[o+1] = uint8(c >> 8)
		img.Pix[o+2] = uint8(c)
		img.Pix[o+3] = 255
	}
	return img
}

// DrawImage paints src stretched over the whole buffer, replacing its
// contents. Used to lay down a backdrop before triangles are rendered.
func (fb *FrameBuffer) DrawImage(src image.Image) {
	if fb.Width == 0 || fb.Height == 0 {
		return
	}
	dst := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	for i := range fb.Pix {
		o := i * 4
		fb.Pix[i] = Pack(dst.Pix[o], dst.Pix[o+1], dst.Pix[o+2])
	}
}

// Pack builds a 0xRRGGBB color.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
