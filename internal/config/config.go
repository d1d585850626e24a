// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// AppName names the configuration and cache directories.
const AppName = "reticle"

// Default configuration values.
const (
	DefaultNamespace      = AppName
	DefaultLayer          = LayerOverlay
	DefaultOpacity        = 1.0
	DefaultFallbackWidth  = 1920
	DefaultFallbackHeight = 1080
	DefaultDebounce       = 150 * time.Millisecond
)

// Layer names accepted by overlay.layer.
const (
	LayerOverlay = "overlay"
	LayerTop     = "top"
)

// Duration is a time.Duration that unmarshals from strings like "150ms" or
// "1s", or from an integer number of milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '150ms', '1s' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Config represents the reticle configuration.
type Config struct {
	Overlay OverlayConfig `toml:"overlay"`
	Output  OutputConfig  `toml:"output"`
	Cache   CacheConfig   `toml:"cache"`
	Watch   WatchConfig   `toml:"watch"`
}

// OverlayConfig controls the layer-shell surface.
type OverlayConfig struct {
	Namespace      string  `toml:"namespace"`
	Layer          string  `toml:"layer"`           // overlay, top
	DefaultOpacity float64 `toml:"default_opacity"` // used when neither flag nor cache set one
}

// OutputConfig holds the logical output size used when the compositor
// reports none.
type OutputConfig struct {
	FallbackWidth  int `toml:"fallback_width"`
	FallbackHeight int `toml:"fallback_height"`
}

// CacheConfig locates the parameter cache.
type CacheConfig struct {
	Path string `toml:"path"` // Empty = XDG cache dir
}

// WatchConfig controls reloading the image when the file changes.
type WatchConfig struct {
	Enabled  bool     `toml:"enabled"`
	Debounce Duration `toml:"debounce"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Overlay: OverlayConfig{
			Namespace:      DefaultNamespace,
			Layer:          DefaultLayer,
			DefaultOpacity: DefaultOpacity,
		},
		Output: OutputConfig{
			FallbackWidth:  DefaultFallbackWidth,
			FallbackHeight: DefaultFallbackHeight,
		},
		Watch: WatchConfig{
			Debounce: Duration(DefaultDebounce),
		},
	}
}

// ConfigPath returns the path to the config file under XDG_CONFIG_HOME.
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// DefaultCachePath returns the parameter cache path under XDG_CACHE_HOME.
func DefaultCachePath() string {
	return filepath.Join(xdg.CacheHome, AppName, "cache")
}

// CachePath returns the configured cache path, or the default one.
func (c *Config) CachePath() string {
	if c.Cache.Path != "" {
		return c.Cache.Path
	}
	return DefaultCachePath()
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that cannot be used as given.
func (c *Config) Validate() error {
	switch c.Overlay.Layer {
	case LayerOverlay, LayerTop:
	default:
		return fmt.Errorf("overlay.layer must be %q or %q, got %q", LayerOverlay, LayerTop, c.Overlay.Layer)
	}
	if o := c.Overlay.DefaultOpacity; o < 0 || o > 1 {
		return fmt.Errorf("overlay.default_opacity must be between 0 and 1, got %v", o)
	}
	if c.Output.FallbackWidth <= 0 || c.Output.FallbackHeight <= 0 {
		return fmt.Errorf("output fallback size must be positive, got %dx%d",
			c.Output.FallbackWidth, c.Output.FallbackHeight)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
