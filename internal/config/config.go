// Package config loads viewer settings from a JSON file with CLI flag
// overrides. Fields not set anywhere fall back to defaults in Resolve.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Assets
	Panorama string `json:"panorama"`
	Scene    string `json:"scene"`

	// Window
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Fallback     string `json:"fallback_color"` // hex #rrggbb, shown when the texture is missing

	// Snapshot tool
	OutputDir    string `json:"output_dir"`
	SnapshotSize int    `json:"snapshot_size"`
	Supersample  int    `json:"supersample"`
	Workers      int    `json:"workers"`
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

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Panorama  string
	Scene     string
	OutputDir string
	Workers   int
}

// Resolve applies flag overrides and fills any remaining empty fields
// with defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Panorama != "" {
		c.Panorama = flags.Panorama
	}
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.WindowWidth <= 0 {
		c.WindowWidth = 1280
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = 720
	}
	if c.Fallback == "" {
		c.Fallback = "#101418"
	}
	if c.OutputDir == "" {
		c.OutputDir = "snapshots"
	}
	if c.SnapshotSize <= 0 {
		c.SnapshotSize = 1024
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// FallbackColor parses the configured hex fallback color.
func (c *Config) FallbackColor() (color.NRGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(c.Fallback, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("config: fallback color %q: %w", c.Fallback, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
