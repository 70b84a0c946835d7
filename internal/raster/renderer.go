// Package raster drives the per-pixel render loop into a row-major image.
package raster

import (
	"sync"
	"time"

	"sphere-tracer/internal/camera"
	"sphere-tracer/internal/scene"
)

// Options controls a single render.
type Options struct {
	Width  int
	Height int
	// Workers is the number of goroutines sharing the rows. Values below 2
	// render row by row on the calling goroutine.
	Workers int
	// Progress, if set, is called once per finished row with the fraction
	// done in [0, 1]. Calls never overlap.
	Progress func(done float64)
}

// Stats describes a finished render.
type Stats struct {
	Pixels  int
	Elapsed time.Duration
}

// PlaneCoords maps pixel (row i0, column i1) to image-plane coordinates.
// u is scaled by the aspect ratio width/height; v runs from -1 at the top row.
func PlaneCoords(i0, i1, width, height int) (u, v float64) {
	aspect := float64(width) / float64(height)
	u = (2*float64(i1)/float64(width) - 1) * aspect
	v = 2*float64(i0)/float64(height) - 1
	return u, v
}

// Render casts one ray per pixel of cam through sc. The scene is only read,
// and each row is written by exactly one worker.
func Render(sc *scene.Scene, cam camera.Camera, opts Options) (*Image, Stats) {
	img := NewImage(opts.Width, opts.Height)
	start := time.Now()

	var (
		mu   sync.Mutex
		done int
	)
	rowDone := func() {
		if opts.Progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		done++
		opts.Progress(progressFraction(done, opts.Height))
	}

	renderRow := func(i0 int) {
		for i1 := 0; i1 < opts.Width; i1++ {
			u, v := PlaneCoords(i0, i1, opts.Width, opts.Height)
			img.Set(sc.Cast(cam.Ray(u, v)), i0, i1)
		}
		rowDone()
	}

	if opts.Workers < 2 {
		for i0 := 0; i0 < opts.Height; i0++ {
			renderRow(i0)
		}
	} else {
		rows := make(chan int, opts.Workers*2)
		var wg sync.WaitGroup
		for w := 0; w < opts.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i0 := range rows {
					renderRow(i0)
				}
			}()
		}
		for i0 := 0; i0 < opts.Height; i0++ {
			rows <- i0
		}
		close(rows)
		wg.Wait()
	}

	return img, Stats{
		Pixels:  opts.Width * opts.Height,
		Elapsed: time.Since(start),
	}
}

// progressFraction is the fraction reported after the n-th finished row:
// (n-1)/(height-1), so the last row reports exactly 1.
func progressFraction(n, height int) float64 {
	if height <= 1 {
		return 1
	}
	return float64(n-1) / float64(height-1)
}
