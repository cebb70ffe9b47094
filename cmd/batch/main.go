package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"triangle-rasterizer/internal/batch"
	"triangle-rasterizer/internal/config"
	"triangle-rasterizer/internal/export"
	"triangle-rasterizer/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	inputDir := flag.String("input", "", "Directory of triangle table CSV files")
	outputDir := flag.String("output", "", "Output directory (default: <input>/renders)")
	format := flag.String("format", "webp", "Output format: webp, png or tga")
	width := flag.Int("width", 0, "Framebuffer width (default: 800)")
	height := flag.Int("height", 0, "Framebuffer height (default: 800)")
	mode := flag.String("mode", "", "filled or wireframe (default: filled)")
	scale := flag.Int("scale", 0, "Integer upscale factor (default: 1)")
	background := flag.String("background", "", "Backdrop image drawn under every scene")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	crop := flag.Bool("crop", false, "Trim each image to its drawn content (ignored with -background)")
	margin := flag.Int("margin", 0, "Margin in pixels kept around cropped content")
	testN := flag.Int("test", 0, "Render only first N scenes for testing")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Input:      *inputDir,
		Output:     *outputDir,
		Background: *background,
		Width:      *width,
		Height:     *height,
		Mode:       *mode,
		Scale:      *scale,
		Workers:    *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	rmode, _ := cfg.RasterMode()

	outFormat, err := export.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.Input == "" {
		fmt.Fprintln(os.Stderr, "Error: no input directory. Use -input flag or config.json.")
		os.Exit(2)
	}
	if cfg.Output == "" {
		cfg.Output = filepath.Join(cfg.Input, "renders")
	}

	paths, err := filepath.Glob(filepath.Join(cfg.Input, "*.csv"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sort.Strings(paths)

	// Limit for testing
	if *testN > 0 && *testN < len(paths) {
		paths = paths[:*testN]
	}

	if len(paths) == 0 {
		fmt.Println("No scenes to render.")
		os.Exit(0)
	}

	fmt.Printf("Triangle batch renderer → %s\n", outFormat)
	fmt.Printf("Scenes: %d, Workers: %d, Buffer: %dx%d\n", len(paths), cfg.Workers, cfg.Width, cfg.Height)
	fmt.Printf("Output: %s\n", cfg.Output)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir:   cfg.Output,
		Format:      outFormat,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Mode:        rmode,
		Scale:       cfg.Scale,
		Background:  cfg.Background,
		Crop:        *crop,
		CropMargin:  *margin,
		TexResolver: texture.NewCache(),
		Workers:     cfg.Workers,
		Progress: func(done, total int, rate float64) {
			fmt.Printf("  [%d/%d] %.1f scenes/sec\n", done, total, rate)
		},
	}

	results := batch.Run(batchCfg, batch.Jobs(paths))

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(paths))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.Output, "manifest.json")
	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
