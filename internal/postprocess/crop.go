package postprocess

import (
	"image"
	"image/color"
)

// Crop trims img to the smallest rectangle holding every pixel that differs
// from bg, plus margin pixels on each side (clamped to the image). An image
// with no such pixels is returned unchanged.
func Crop(img *image.NRGBA, bg color.NRGBA, margin int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	minX, minY := w, h
	maxX, maxY := -1, -1
	for y := 0; y < h; y++ {
		off := y * img.Stride
		for x := 0; x < w; x++ {
			i := off + x*4
			if img.Pix[i] == bg.R && img.Pix[i+1] == bg.G && img.Pix[i+2] == bg.B && img.Pix[i+3] == bg.A {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}

	if maxX < 0 {
		return img
	}

	minX, minY = max(minX-margin, 0), max(minY-margin, 0)
	maxX, maxY = min(maxX+margin, w-1), min(maxY+margin, h-1)

	cropW := maxX - minX + 1
	cropH := maxY - minY + 1
	cropped := image.NewNRGBA(image.Rect(0, 0, cropW, cropH))
	for y := 0; y < cropH; y++ {
		srcOff := (minY+y)*img.Stride + minX*4
		dstOff := y * cropped.Stride
		copy(cropped.Pix[dstOff:dstOff+cropW*4], img.Pix[srcOff:srcOff+cropW*4])
	}
	return cropped
}
