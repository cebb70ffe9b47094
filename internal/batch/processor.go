package batch

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"triangle-rasterizer/internal/export"
	"triangle-rasterizer/internal/postprocess"
	"triangle-rasterizer/internal/raster"
	"triangle-rasterizer/internal/texture"
	"triangle-rasterizer/internal/trilist"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir   string
	Format      export.Format
	Width       int
	Height      int
	Mode        raster.Mode
	Scale       int
	Background  string // optional backdrop image path
	Crop        bool   // trim output to drawn content (black backdrop only)
	CropMargin  int
	TexResolver texture.Resolver // defaults to a fresh texture.Cache when Background is set
	Workers     int

	// Progress, when set, is called every couple of seconds while jobs run.
	Progress func(done, total int, rate float64)
}

// Job is one scene file to render.
type Job struct {
	Name  string
	Input string
}

// Result holds the outcome of processing one job.
type Result struct {
	Name      string
	Input     string
	Output    string
	Triangles int
	Stats     raster.Stats
	Success   bool
	Error     string
}

// Jobs builds one job per CSV file, named after the file stem.
func Jobs(paths []string) []Job {
	jobs := make([]Job, len(paths))
	for i, p := range paths {
		jobs[i] = Job{
			Name:  strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)),
			Input: p,
		}
	}
	return jobs
}

// Run processes all jobs using a worker pool. Every job renders into its
// own framebuffer, so workers never share pixels.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := max(cfg.Workers, 1)
	start := time.Now()

	if cfg.Background != "" && cfg.TexResolver == nil {
		cfg.TexResolver = texture.NewCache()
	}

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						cfg.Progress(int(p), total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, job Job) Result {
	res := Result{Name: job.Name, Input: job.Input}
	fail := func(err error) Result {
		res.Error = err.Error()
		return res
	}

	tris, err := trilist.Parse(job.Input)
	if err != nil {
		return fail(err)
	}
	res.Triangles = len(tris)

	fb := raster.NewFrameBuffer(cfg.Width, cfg.Height)
	if cfg.Background != "" {
		bg, err := cfg.TexResolver.Resolve(cfg.Background)
		if err != nil {
			return fail(err)
		}
		fb.DrawImage(bg)
	}

	r := raster.NewRasterizer(fb, cfg.Mode)
	r.Render(tris)
	res.Stats = r.Stats()

	img := fb.Image()
	if cfg.Crop && cfg.Background == "" {
		img = postprocess.Crop(img, color.NRGBA{A: 255}, cfg.CropMargin)
	}
	img = postprocess.Scale(img, cfg.Scale)

	format := cfg.Format
	if format == "" {
		format = export.WebP
	}
	res.Output = filepath.Join(cfg.OutputDir, job.Name+format.Ext())
	if err := export.Save(res.Output, img); err != nil {
		return fail(fmt.Errorf("%s: %w", job.Name, err))
	}

	res.Success = true
	return res
}
