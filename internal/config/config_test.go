package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "reticle", cfg.Overlay.Namespace)
	assert.Equal(t, "overlay", cfg.Overlay.Layer)
	assert.Equal(t, 1.0, cfg.Overlay.DefaultOpacity)
	assert.Equal(t, 1920, cfg.Output.FallbackWidth)
	assert.Equal(t, 1080, cfg.Output.FallbackHeight)
	assert.Empty(t, cfg.Cache.Path)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, 150*time.Millisecond, cfg.Watch.Debounce.Duration())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[overlay]
namespace = "crosshair"
layer = "top"
default_opacity = 0.5

[output]
fallback_width = 2560
fallback_height = 1440

[cache]
path = "/tmp/reticle-cache"

[watch]
enabled = true
debounce = "1s"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "crosshair", cfg.Overlay.Namespace)
	assert.Equal(t, "top", cfg.Overlay.Layer)
	assert.Equal(t, 0.5, cfg.Overlay.DefaultOpacity)
	assert.Equal(t, 2560, cfg.Output.FallbackWidth)
	assert.Equal(t, 1440, cfg.Output.FallbackHeight)
	assert.Equal(t, "/tmp/reticle-cache", cfg.CachePath())
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, time.Second, cfg.Watch.Debounce.Duration())
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[watch]
enabled = true
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Watch.Enabled)

	// Unchanged fields keep their defaults
	assert.Equal(t, DefaultDebounce, cfg.Watch.Debounce.Duration())
	assert.Equal(t, "overlay", cfg.Overlay.Layer)
	assert.Equal(t, 1920, cfg.Output.FallbackWidth)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	err := os.WriteFile(path, []byte(`this is not valid toml [`), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown layer", "[overlay]\nlayer = \"background\"\n"},
		{"opacity above one", "[overlay]\ndefault_opacity = 1.5\n"},
		{"zero fallback", "[output]\nfallback_width = 0\n"},
		{"bad debounce", "[watch]\ndebounce = \"soon\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"150ms", 150 * time.Millisecond},
		{"2s", 2 * time.Second},
		{"250", 250 * time.Millisecond},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalText([]byte(tt.input)))
			assert.Equal(t, tt.want, d.Duration())
		})
	}
}

func TestCachePath_Default(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultCachePath(), cfg.CachePath())
	assert.Equal(t, filepath.Join("reticle", "cache"),
		filepath.Join(filepath.Base(filepath.Dir(cfg.CachePath())), filepath.Base(cfg.CachePath())))
}

func TestConfig_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.toml")

	cfg := DefaultConfig()
	cfg.Overlay.Layer = LayerTop
	cfg.Watch.Debounce = Duration(2 * time.Second)

	err := cfg.Save(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
