package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"triangle-rasterizer/internal/raster"
)

// ErrInvalid is returned by Validate for settings the renderer cannot use.
var ErrInvalid = errors.New("invalid config")

// Config holds input/output paths and render settings.
type Config struct {
	// Paths
	BaseDir    string `json:"base_dir"`
	Input      string `json:"input"`
	Output     string `json:"output"`
	Background string `json:"background"`

	// Render settings
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Mode    string `json:"mode"`
	Scale   int    `json:"scale"`
	FPS     int    `json:"fps"`
	Workers int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Input != "" {
		c.Input = flags.Input
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Input == "" {
		c.Input = flags.DefaultInput
	}

	// Relative paths are taken against the base dir, when one is set
	if c.BaseDir != "" {
		c.Input = c.join(c.Input)
		c.Output = c.join(c.Output)
		c.Background = c.join(c.Background)
	}

	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 800
	}
	if c.Mode == "" {
		c.Mode = "filled"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks the resolved settings.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: %w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if _, err := c.RasterMode(); err != nil {
		return err
	}
	return nil
}

// RasterMode maps the mode name to a raster.Mode.
func (c Config) RasterMode() (raster.Mode, error) {
	switch c.Mode {
	case "filled", "":
		return raster.ModeFilled, nil
	case "wireframe":
		return raster.ModeWireframe, nil
	}
	return 0, fmt.Errorf("config: %w: unknown mode %q", ErrInvalid, c.Mode)
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Input      string
	Output     string
	Background string
	Width      int
	Height     int
	Mode       string
	Scale      int
	FPS        int
	Workers    int

	// DefaultInput is used when neither the file nor the flags name an
	// input. Left empty, Input stays empty.
	DefaultInput string
}

func (c *Config) join(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}
