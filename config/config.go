// Package config loads the settings shared by the gridastar commands.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Config is the JSON configuration. Fields omitted from a file keep their
// defaults.
type Config struct {
	// Board
	Dimension int `json:"dimension"`

	// Desktop visualiser
	WindowWidth   int    `json:"window_width"`
	StepsPerFrame int    `json:"steps_per_frame"`
	PulsePeriod   string `json:"pulse_period"` // duration string like "800ms"

	// Image export
	CellSize int `json:"cell_size"`

	// Web visualiser
	ListenAddr string  `json:"listen_addr"`
	FrameDelay string  `json:"frame_delay"` // duration string like "30ms"
	Scatter    Scatter `json:"scatter"`

	LogLevel string `json:"log_level"`
}

// Scatter controls random barrier generation.
type Scatter struct {
	Clusters int     `json:"clusters"`
	Steps    int     `json:"steps"`
	Density  float64 `json:"density"`
}

// Default returns the built-in configuration: a 20×20 board in an 800 pixel
// window.
func Default() *Config {
	return &Config{
		Dimension:     20,
		WindowWidth:   800,
		StepsPerFrame: 1,
		PulsePeriod:   "800ms",
		CellSize:      20,
		ListenAddr:    ":8080",
		FrameDelay:    "30ms",
		Scatter: Scatter{
			Clusters: 8,
			Steps:    200,
			Density:  0.25,
		},
		LogLevel: "info",
	}
}

// Load reads a JSON configuration file on top of Default.
// The file must have a .json extension and be under 1MB.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Dimension < 1 {
		return fmt.Errorf("dimension must be positive, got %d", c.Dimension)
	}
	if c.WindowWidth < c.Dimension {
		return fmt.Errorf("window_width %d is smaller than dimension %d", c.WindowWidth, c.Dimension)
	}
	if c.StepsPerFrame < 1 {
		return fmt.Errorf("steps_per_frame must be positive, got %d", c.StepsPerFrame)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("cell_size must be positive, got %d", c.CellSize)
	}
	if _, err := time.ParseDuration(c.PulsePeriod); err != nil {
		return fmt.Errorf("invalid pulse_period '%s': %w", c.PulsePeriod, err)
	}
	if _, err := time.ParseDuration(c.FrameDelay); err != nil {
		return fmt.Errorf("invalid frame_delay '%s': %w", c.FrameDelay, err)
	}
	if c.Scatter.Clusters < 0 || c.Scatter.Steps < 0 {
		return fmt.Errorf("scatter clusters and steps must be non-negative, got %d and %d", c.Scatter.Clusters, c.Scatter.Steps)
	}
	if c.Scatter.Density < 0 || c.Scatter.Density > 1 {
		return fmt.Errorf("scatter density must be between 0 and 1, got %f", c.Scatter.Density)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

// CellPixels returns the on-screen size of one cell.
func (c *Config) CellPixels() int { return c.WindowWidth / c.Dimension }

// GetPulsePeriod returns PulsePeriod as a duration.
func (c *Config) GetPulsePeriod() time.Duration {
	d, err := time.ParseDuration(c.PulsePeriod)
	if err != nil {
		return 800 * time.Millisecond
	}
	return d
}

// GetFrameDelay returns FrameDelay as a duration.
func (c *Config) GetFrameDelay() time.Duration {
	d, err := time.ParseDuration(c.FrameDelay)
	if err != nil {
		return 30 * time.Millisecond
	}
	return d
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
