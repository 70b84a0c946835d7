package batch

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"sphere-tracer/internal/camera"
	"sphere-tracer/internal/imageio"
	"sphere-tracer/internal/raster"
	"sphere-tracer/internal/scene"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    string
	Width     int
	Height    int
	Camera    camera.Camera
	Workers   int // row workers per render
	Jobs      int // scenes rendered at once
	Thumb     int // if > 0, also write a PNG preview with this longest side

	// Log receives the row progress bar when scenes render one at a time,
	// and periodic counters otherwise. Nil disables progress output.
	Log io.Writer
}

// Result holds the outcome of rendering one scene.
type Result struct {
	Name    string
	Image   string
	Width   int
	Height  int
	Elapsed time.Duration
	Success bool
	Error   string
}

// Name derives the output name of a scene reference: the preset name, or
// the file name without extension.
func Name(ref string) string {
	base := filepath.Base(ref)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// UniqueNames returns Name(ref) for every reference, suffixing repeats
// with _2, _3, ... so that no two scenes share an output file.
func UniqueNames(refs []string) []string {
	names := make([]string, len(refs))
	used := make(map[string]bool, len(refs))
	for i, ref := range refs {
		base := Name(ref)
		name := base
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// LoadScene resolves a scene reference. References ending in .json, or naming
// an existing file, are loaded from disk; anything else must be a preset.
func LoadScene(ref string) (*scene.Scene, error) {
	if strings.EqualFold(filepath.Ext(ref), ".json") {
		return scene.Load(ref)
	}
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return scene.Load(ref)
	}
	return scene.Preset(ref)
}

// Run renders every scene reference using a pool of cfg.Jobs workers.
func Run(cfg Config, refs []string) []Result {
	total := len(refs)
	results := make([]Result, total)
	names := UniqueNames(refs)
	var processed atomic.Int64

	jobs := max(1, cfg.Jobs)
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Log != nil && jobs > 1 {
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
						elapsed := time.Since(start).Seconds()
						fmt.Fprintf(cfg.Log, "  [%d/%d] %.2f scenes/sec\n", p, total, float64(p)/elapsed)
					}
				}
			}
		}()
	}

	// Worker pool
	refChan := make(chan int, jobs*2)
	var wg sync.WaitGroup

	for w := 0; w < jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range refChan {
				results[idx] = processScene(cfg, refs[idx], names[idx], jobs == 1)
				processed.Add(1)
			}
		}()
	}

	for i := range refs {
		refChan <- i
	}
	close(refChan)

	wg.Wait()
	close(done)

	return results
}

func processScene(cfg Config, ref, name string, showBar bool) Result {
	res := Result{
		Name:   name,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
	fail := func(err error) Result {
		res.Error = err.Error()
		return res
	}

	sc, err := LoadScene(ref)
	if err != nil {
		return fail(err)
	}

	opts := raster.Options{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Workers: cfg.Workers,
	}
	if showBar && cfg.Log != nil {
		opts.Progress = raster.ProgressBar(cfg.Log)
	}
	img, stats := raster.Render(sc, cfg.Camera, opts)
	res.Elapsed = stats.Elapsed
	if opts.Progress != nil {
		fmt.Fprintf(cfg.Log, " %d msec\n", stats.Elapsed.Milliseconds())
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fail(err)
	}
	res.Image = res.Name + "." + cfg.Format
	if opts.Progress != nil {
		fmt.Fprint(cfg.Log, "Saving...")
	}
	saveStart := time.Now()
	if err := imageio.Save(filepath.Join(cfg.OutputDir, res.Image), img, cfg.Format); err != nil {
		if opts.Progress != nil {
			fmt.Fprintln(cfg.Log)
		}
		return fail(err)
	}
	if opts.Progress != nil {
		fmt.Fprintf(cfg.Log, " %d msec\n", time.Since(saveStart).Milliseconds())
	}

	if cfg.Thumb > 0 {
		if err := writeThumb(filepath.Join(cfg.OutputDir, res.Name+"_thumb.png"), img, cfg.Thumb); err != nil {
			return fail(fmt.Errorf("thumbnail: %w", err))
		}
	}

	res.Success = true
	return res
}

func writeThumb(path string, img *raster.Image, side int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, imageio.Thumbnail(imageio.ToNRGBA(img), side)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
