package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadImagePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	want := color.NRGBA{R: 40, G: 80, B: 120, A: 255}
	writePNG(t, path, want)

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if got := img.NRGBAAt(2, 1); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
	junk := filepath.Join(dir, "junk.png")
	os.WriteFile(junk, []byte("not an image"), 0644)
	if _, err := LoadImage(junk); err == nil {
		t.Error("expected decode error")
	}
}

func TestToNRGBAShiftsOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.Set(6, 5, color.RGBA{R: 255, A: 255})
	dst := toNRGBA(src)
	if dst.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("bounds = %v", dst.Bounds())
	}
	if got := dst.NRGBAAt(1, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestCacheConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	writePNG(t, path, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	cache := NewCache()

	var wg sync.WaitGroup
	imgs := make([]*image.NRGBA, 8)
	for i := range imgs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			img, err := cache.Resolve(path)
			if err != nil {
				t.Errorf("Resolve: %v", err)
			}
			imgs[i] = img
		}()
	}
	wg.Wait()

	for _, img := range imgs[1:] {
		if img != imgs[0] {
			t.Fatal("cache returned different images for one path")
		}
	}
	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1", cache.Len())
	}

	missing := filepath.Join(t.TempDir(), "none.png")
	if _, err := cache.Resolve(missing); err == nil {
		t.Error("expected error for missing image")
	}
	if _, err := cache.Resolve(missing); err == nil {
		t.Error("cached failure should be reported again")
	}
}
