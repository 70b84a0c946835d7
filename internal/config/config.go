package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"sphere-tracer/internal/camera"
	"sphere-tracer/internal/imageio"
	"sphere-tracer/internal/scene"
)

// Config holds the scenes to render and the render settings.
type Config struct {
	// Scenes are preset names or paths to JSON scene files.
	Scenes    []string `json:"scenes"`
	OutputDir string   `json:"output_dir"`
	Format    string   `json:"format"`

	// Render settings, fixed for the whole run.
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Camera  string  `json:"camera"`
	FOV     float64 `json:"fov"` // degrees, perspective only
	Workers int     `json:"workers"`
	Jobs    int     `json:"jobs"`
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

// Resolve applies CLI flags over the file values and fills in defaults.
// Flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if len(flags.Scenes) > 0 {
		c.Scenes = flags.Scenes
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Camera != "" {
		c.Camera = flags.Camera
	}
	if flags.FOV > 0 {
		c.FOV = flags.FOV
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Jobs > 0 {
		c.Jobs = flags.Jobs
	}

	if len(c.Scenes) == 0 {
		c.Scenes = []string{scene.DefaultPreset}
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = imageio.FormatPPM
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Camera == "" {
		c.Camera = camera.KindPerspective
	}
	if c.FOV <= 0 {
		c.FOV = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Jobs <= 0 {
		c.Jobs = 1
	}
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	known := false
	for _, f := range imageio.Formats {
		if c.Format == f {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("config: unknown format %q (have %s)", c.Format, strings.Join(imageio.Formats, ", "))
	}
	if _, err := camera.New(c.Camera, c.FOV); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scenes    []string
	OutputDir string
	Format    string
	Width     int
	Height    int
	Camera    string
	FOV       float64
	Workers   int
	Jobs      int
}
