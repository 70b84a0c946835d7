package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sphere-tracer/internal/batch"
	"sphere-tracer/internal/camera"
	"sphere-tracer/internal/config"
	"sphere-tracer/internal/imageio"
	"sphere-tracer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	scenes := flag.String("scene", "", "Comma-separated presets or scene JSON files (default: pair)")
	outputDir := flag.String("output", "", "Output directory (default: .)")
	format := flag.String("format", "", "Output format: "+strings.Join(imageio.Formats, ", ")+" (default: ppm)")
	width := flag.Int("width", 0, "Image width in pixels (default: 640)")
	height := flag.Int("height", 0, "Image height in pixels (default: 480)")
	cam := flag.String("camera", "", "Camera: perspective or ortho (default: perspective)")
	fov := flag.Float64("fov", 0, "Perspective field of view in degrees (default: 90)")
	workers := flag.Int("workers", 0, "Row workers per render (default: NumCPU)")
	jobs := flag.Int("jobs", 0, "Scenes rendered concurrently (default: 1)")
	thumb := flag.Int("thumb", 0, "Also write a PNG preview with this longest side")
	list := flag.Bool("list", false, "List scene presets and exit")
	dump := flag.String("dump", "", "Write the named preset as scene JSON to stdout and exit")

	flag.Parse()

	if *list {
		for _, name := range scene.PresetNames() {
			fmt.Println(name)
		}
		return
	}
	if *dump != "" {
		if err := dumpPreset(*dump); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

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
	flags := config.Flags{
		OutputDir: *outputDir,
		Format:    *format,
		Width:     *width,
		Height:    *height,
		Camera:    *cam,
		FOV:       *fov,
		Workers:   *workers,
		Jobs:      *jobs,
	}
	if *scenes != "" {
		flags.Scenes = strings.Split(*scenes, ",")
	}
	cfg.Resolve(flags)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cm, err := camera.New(cfg.Camera, cfg.FOV)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := message.NewPrinter(language.English)
	p.Printf("Sphere tracer → %s\n", strings.ToUpper(cfg.Format))
	p.Printf("Scenes: %d, Size: %dx%d, Camera: %s, Workers: %d\n",
		len(cfg.Scenes), cfg.Width, cfg.Height, cfg.Camera, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Camera:    cm,
		Workers:   cfg.Workers,
		Jobs:      cfg.Jobs,
		Thumb:     *thumb,
		Log:       os.Stderr,
	}, cfg.Scenes)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			fmt.Printf("  %s: %s (%d msec)\n", r.Name, r.Image, r.Elapsed.Milliseconds())
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	p.Printf("Rendered: %d/%d scenes, %d pixels\n", success, len(results), success*cfg.Width*cfg.Height)

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errors {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest when more than one scene was requested
	if len(results) > 1 {
		manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
		if err := batch.WriteManifest(manifestPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func dumpPreset(name string) error {
	sc, err := scene.Preset(name)
	if err != nil {
		return err
	}
	return scene.Write(os.Stdout, sc)
}
