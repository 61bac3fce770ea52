package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"solar-system/internal/planets"
)

// Bounds for a running time scale. Zero (frozen) is also allowed.
const (
	MinTimeScale float32 = 1.0 / 64
	MaxTimeScale float32 = 1024
)

// DefaultPath is the viewer config file, relative to the process working directory.
const DefaultPath = "config/viewer.yaml"

// Config holds viewer preferences. Persisted across runs.
type Config struct {
	Window      Window   `yaml:"window"`
	Textures    Textures `yaml:"textures"`
	LogLevel    string   `yaml:"log_level"`
	GridVisible bool     `yaml:"grid_visible"`
	ShowLabels  bool     `yaml:"show_labels"`
	// TimeScale multiplies orbital speed; 0 freezes the planets.
	TimeScale float32 `yaml:"time_scale"`
	// Focus names the planet the camera follows at startup; empty means the sun.
	Focus string `yaml:"focus,omitempty"`
	Debug Debug  `yaml:"debug"`
}

// Debug holds the overlay switches. Both are off by default.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
}

type Window struct {
	Width      int32 `yaml:"width"`
	Height     int32 `yaml:"height"`
	Fullscreen bool  `yaml:"fullscreen"`
	TargetFPS  int32 `yaml:"target_fps"`
}

// Textures controls where texture files are looked up and whether the remote catalog is
// loaded at startup.
type Textures struct {
	Dir              string `yaml:"dir"`
	EagerLoadCatalog bool   `yaml:"eager_load_catalog"`
}

// Default returns the default preferences (windowed 1280x720, catalog not preloaded).
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		Textures: Textures{
			Dir: "assets/textures",
		},
		LogLevel:    "info",
		GridVisible: true,
		ShowLabels:  true,
		TimeScale:   1,
	}
}

// Load reads preferences from path. A missing file yields Default() and no error. Keys absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Validate rejects values the viewer cannot run with.
func (c Config) Validate() error {
	if !c.Window.Fullscreen && (c.Window.Width <= 0 || c.Window.Height <= 0) {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("target_fps %d must not be negative", c.Window.TargetFPS)
	}
	if c.TimeScale < 0 || c.TimeScale > MaxTimeScale {
		return fmt.Errorf("time_scale %v must be within [0, %v]", c.TimeScale, MaxTimeScale)
	}
	if c.Focus != "" {
		if _, err := planets.Parse(c.Focus); err != nil {
			return fmt.Errorf("focus: %w", err)
		}
	}
	return nil
}

// Save writes preferences to path, creating the parent directory if needed. The viewer calls it
// on exit so toggles made at runtime persist.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// StepTimeScale multiplies scale by factor, clamped to [MinTimeScale, MaxTimeScale].
// A frozen scale (0) stays frozen.
func StepTimeScale(scale, factor float32) float32 {
	if scale == 0 {
		return 0
	}
	scale *= factor
	if scale < MinTimeScale {
		return MinTimeScale
	}
	if scale > MaxTimeScale {
		return MaxTimeScale
	}
	return scale
}
