package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, 600*time.Millisecond, cfg.Animation.Interval)
	assert.Equal(t, 300*time.Millisecond, cfg.Animation.RevealDuration)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 1.0, cfg.Window.Scale)
	assert.Equal(t, uint64(1), cfg.Generate.Seed)
	assert.Empty(t, cfg.Map.Source)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house-roads.yaml")
	content := `
logger:
  level: debug
map:
  source: maps/village.json
animation:
  interval: 250ms
window:
  width: 640
  height: 480
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "maps/village.json", cfg.Map.Source)
	assert.Equal(t, 250*time.Millisecond, cfg.Animation.Interval)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)

	// untouched keys keep their defaults
	assert.Equal(t, 300*time.Millisecond, cfg.Animation.RevealDuration)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HOUSE_ROADS_ANIMATION_INTERVAL", "1s")
	t.Setenv("HOUSE_ROADS_MAP_SOURCE", "https://example.com/houses.json")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Animation.Interval)
	assert.Equal(t, "https://example.com/houses.json", cfg.Map.Source)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	cfg.Animation.Interval = -time.Second
	cfg.Window.Width = 0
	cfg.Logger.Format = "xml"

	err = cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "animation.interval")
	assert.ErrorContains(t, err, "window size")
	assert.ErrorContains(t, err, "logger.format")
}
