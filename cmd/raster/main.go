package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"triangle-rasterizer/internal/config"
	"triangle-rasterizer/internal/display"
	"triangle-rasterizer/internal/export"
	"triangle-rasterizer/internal/geom"
	"triangle-rasterizer/internal/postprocess"
	"triangle-rasterizer/internal/raster"
	"triangle-rasterizer/internal/texture"
	"triangle-rasterizer/internal/trilist"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	input := flag.String("input", "", "Triangle table CSV (default: triangles.csv)")
	width := flag.Int("width", 0, "Framebuffer width (default: 800)")
	height := flag.Int("height", 0, "Framebuffer height (default: 800)")
	mode := flag.String("mode", "", "filled or wireframe (default: filled)")
	out := flag.String("out", "", "Render one frame to this .webp/.png/.tga file instead of opening a window")
	scale := flag.Int("scale", 0, "Integer upscale factor for -out (default: 1)")
	background := flag.String("background", "", "Backdrop image drawn before the triangles")
	fps := flag.Int("fps", 0, "Frame rate of the display loop (default: 60)")
	stats := flag.Bool("stats", false, "Print rasterizer counters once per second")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [x1 y1 x2 y2 x3 y3 [color]]\n", os.Args[0])
		flag.PrintDefaults()
	}
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
		Input:        *input,
		Output:       *out,
		Background:   *background,
		Width:        *width,
		Height:       *height,
		Mode:         *mode,
		Scale:        *scale,
		FPS:          *fps,
		DefaultInput: "triangles.csv",
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	rmode, _ := cfg.RasterMode()

	// Triangles come from positional arguments or the CSV table
	var tris []geom.Triangle
	if flag.NArg() > 0 {
		tri, err := trilist.FromArgs(flag.Args())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			flag.Usage()
			os.Exit(2)
		}
		tris = []geom.Triangle{tri}
	} else {
		var err error
		tris, err = trilist.Parse(cfg.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading triangles: %v\n", err)
			os.Exit(1)
		}
	}
	degenerate := 0
	for _, t := range tris {
		if t.Degenerate() {
			degenerate++
		}
	}
	if degenerate > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d degenerate (zero-area) triangles\n", degenerate)
	}
	fmt.Fprintf(os.Stderr, "Triangles: %d, Buffer: %dx%d, Mode: %s\n", len(tris), cfg.Width, cfg.Height, cfg.Mode)

	fb := raster.NewFrameBuffer(cfg.Width, cfg.Height)
	r := raster.NewRasterizer(fb, rmode)

	var backdrop *raster.FrameBuffer
	if cfg.Background != "" {
		img, err := texture.LoadImage(cfg.Background)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading background: %v\n", err)
			os.Exit(1)
		}
		backdrop = raster.NewFrameBuffer(cfg.Width, cfg.Height)
		backdrop.DrawImage(img)
	}

	if cfg.Output != "" {
		renderFrame(r, backdrop, tris)
		img := postprocess.Scale(fb.Image(), cfg.Scale)
		if err := export.Save(cfg.Output, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (%v)\n", cfg.Output, r.Stats())
		return
	}

	if err := runWindow(cfg, r, backdrop, tris, *stats); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// renderFrame resets the buffer to the backdrop (or black) and draws tris.
func renderFrame(r *raster.Rasterizer, backdrop *raster.FrameBuffer, tris []geom.Triangle) {
	fb := r.FrameBuffer()
	if backdrop != nil {
		copy(fb.Pix, backdrop.Pix)
	} else {
		fb.Clear(0)
	}
	r.Render(tris)
}

func runWindow(cfg config.Config, r *raster.Rasterizer, backdrop *raster.FrameBuffer, tris []geom.Triangle, stats bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	const title = " Triangle Rasterization "
	win := display.NewWindow(screen, title)
	if err := win.Init(); err != nil {
		return err
	}
	defer win.Close()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	// Stats go to the title row; printing would tear the terminal surface
	lastReport := time.Now()
	frames, total := 0, 0
	for win.IsOpen() {
		win.Pump()
		renderFrame(r, backdrop, tris)
		win.Update(r.FrameBuffer())
		frames++
		total++

		if stats && time.Since(lastReport) >= time.Second {
			s := r.Stats()
			win.SetTitle(fmt.Sprintf("%s| %d fps | per frame: written=%d clipped=%d ",
				title, frames, s.Written/frames, s.Clipped/frames))
			r.ResetStats()
			frames = 0
			lastReport = time.Now()
		}
		<-ticker.C
	}

	win.Close()
	fmt.Printf("Frames: %d\n", total)
	return nil
}
