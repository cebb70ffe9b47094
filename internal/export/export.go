// Package export writes rendered frames to image files.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// ErrFormat is returned for output formats that have no encoder.
var ErrFormat = errors.New("unsupported image format")

// Format names an output encoding.
type Format string

const (
	WebP Format = "webp"
	PNG  Format = "png"
	TGA  Format = "tga"
)

// ParseFormat accepts a format name or file extension, with or without the
// leading dot, in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case WebP, PNG, TGA:
		return f, nil
	}
	return "", fmt.Errorf("export: %w: %q", ErrFormat, s)
}

// FormatOf picks the format from a file name's extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case PNG:
		return png.Encode(w, img)
	case TGA:
		return tga.Encode(w, img)
	}
	return fmt.Errorf("export: %w: %q", ErrFormat, string(f))
}

// Save writes img to path, choosing the encoder from the extension and
// creating parent directories as needed.
func Save(path string, img image.Image) (err error) {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()

	if err := Encode(out, img, f); err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return nil
}
