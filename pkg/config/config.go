package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the complete application configuration.
type Config struct {
	Server  ServerConfig  `json:"server"`
	Source  SourceConfig  `json:"source"`
	Refresh RefreshConfig `json:"refresh"`
	View    ViewConfig    `json:"view"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port string `json:"port"`

	// Host is the server bind address (default: "0.0.0.0")
	Host string `json:"host"`
}

// SourceConfig selects and tunes the flight data source.
type SourceConfig struct {
	// Mode is "opensky" for live data or "demo" for simulated traffic.
	// In opensky mode the demo generator still serves as the fallback
	// when the API is unavailable.
	Mode string `json:"mode"`

	// BaseURL overrides the OpenSky API endpoint
	BaseURL string `json:"base_url,omitempty"`

	// CacheSeconds is the snapshot reuse window for the live source
	CacheSeconds int `json:"cache_seconds"`

	// RequestsPerMinute caps upstream API calls.
	// The anonymous OpenSky tier allows only 100 requests/day.
	RequestsPerMinute float64 `json:"requests_per_minute"`

	// DemoSeed seeds the simulated traffic generator; 0 means
	// time-based
	DemoSeed int64 `json:"demo_seed,omitempty"`
}

// RefreshConfig sets the periodic recompute intervals.
type RefreshConfig struct {
	// FlightsSeconds is the flight snapshot refresh period (default: 10)
	FlightsSeconds int `json:"flights_seconds"`

	// SolarSeconds is the subsolar point refresh period (default: 60)
	SolarSeconds int `json:"solar_seconds"`
}

// ViewConfig holds presentation settings shared with clients.
type ViewConfig struct {
	// ActiveTheme names the theme served to clients that do not pick
	// one: "realistic", "night", "dark", "minimal", or "hologram"
	ActiveTheme string `json:"active_theme"`

	// TerminatorPoints is the number of segments in the day/night
	// boundary outline
	TerminatorPoints int `json:"terminator_points"`

	// InitialLat, InitialLng and InitialZoom set the camera position
	// a fresh client starts from (default: centered on the US)
	InitialLat  float64 `json:"initial_lat"`
	InitialLng  float64 `json:"initial_lng"`
	InitialZoom float64 `json:"initial_zoom"`
}

// Load reads configuration from a JSON file.
// If the file doesn't exist, returns a default configuration.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to a JSON file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
			Host: "0.0.0.0",
		},
		Source: SourceConfig{
			Mode:              "opensky",
			CacheSeconds:      10,
			RequestsPerMinute: 6,
		},
		Refresh: RefreshConfig{
			FlightsSeconds: 10,
			SolarSeconds:   60,
		},
		View: ViewConfig{
			ActiveTheme:      "night",
			TerminatorPoints: 180,
			InitialLat:       38,
			InitialLng:       -97,
			InitialZoom:      1,
		},
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	switch c.Source.Mode {
	case "opensky", "demo":
	default:
		return fmt.Errorf("unknown source mode %q (want opensky or demo)", c.Source.Mode)
	}

	if c.Refresh.FlightsSeconds <= 0 {
		return fmt.Errorf("flights refresh interval must be positive, got %d", c.Refresh.FlightsSeconds)
	}
	if c.Refresh.SolarSeconds <= 0 {
		return fmt.Errorf("solar refresh interval must be positive, got %d", c.Refresh.SolarSeconds)
	}
	if c.View.TerminatorPoints < 3 {
		return fmt.Errorf("terminator outline needs at least 3 points, got %d", c.View.TerminatorPoints)
	}
	if _, ok := Themes[c.View.ActiveTheme]; !ok {
		return fmt.Errorf("unknown theme %q", c.View.ActiveTheme)
	}
	if c.View.InitialZoom <= 0 {
		return fmt.Errorf("initial zoom must be positive, got %f", c.View.InitialZoom)
	}

	return nil
}

// applyEnvironmentOverrides applies environment variable overrides to
// the config, so deployments can adjust without editing files.
func (c *Config) applyEnvironmentOverrides() {
	if port := os.Getenv("SKYPATH_PORT"); port != "" {
		c.Server.Port = port
	}
	if mode := os.Getenv("SKYPATH_SOURCE_MODE"); mode != "" {
		c.Source.Mode = mode
	}
	if url := os.Getenv("SKYPATH_OPENSKY_URL"); url != "" {
		c.Source.BaseURL = url
	}
	if theme := os.Getenv("SKYPATH_THEME"); theme != "" {
		c.View.ActiveTheme = theme
	}
}
