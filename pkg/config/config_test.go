// pkg/config/config_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-airboat/pkg/validation"
	"github.com/opd-ai/go-airboat/pkg/vehicle"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, vehicle.DefaultSettings(), cfg.Vehicle)
	assert.Equal(t, 100.0, cfg.Scenery.WorldSize)
	assert.Equal(t, 200, cfg.Scenery.Segments)
	assert.Equal(t, 0.15, cfg.Scenery.HeightMapOffset)
	assert.Equal(t, 0.05, cfg.Scenery.SurfaceMargin)
	assert.Equal(t, 0.6, cfg.Scenery.DecorationScale)
	assert.Equal(t, 2.5, cfg.Input.AxisRate)
	assert.Contains(t, cfg.Assets.Decorations, "tree")
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airboat.yaml")
	data := []byte(`
vehicle:
  thrust: 4
scenery:
  worldSize: 50
  seed: 42
assets:
  decorations: [rock, tree]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 4.0, cfg.Vehicle.Thrust)
	assert.Equal(t, 0.9, cfg.Vehicle.ThrustTurningTorque, "unset keys keep defaults")
	assert.Equal(t, 50.0, cfg.Scenery.WorldSize)
	assert.Equal(t, uint64(42), cfg.Scenery.Seed)
	assert.Equal(t, []string{"rock", "tree"}, cfg.Assets.Decorations)
}

func TestLoadConfig_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airboat.json")
	data := []byte(`{"loop": {"timeStep": 0.02}, "window": {"headless": true}}`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 0.02, cfg.Loop.TimeStep)
	assert.Equal(t, 0.1, cfg.Loop.MaxFrameDelta)
	assert.True(t, cfg.Window.Headless)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("AIRBOAT_VEHICLE_SIDEWAYSDRAG", "3.5")
	t.Setenv("AIRBOAT_LOG_LEVEL", "DEBUG")

	path := filepath.Join(t.TempDir(), "airboat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vehicle:\n  sidewaysDrag: 1\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3.5, cfg.Vehicle.SidewaysDrag, "environment beats file")
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("vehicle: [unclosed"), 0o644))

		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("fails_validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "zero.yaml")
		require.NoError(t, os.WriteFile(path, []byte("scenery:\n  worldSize: 0\n"), 0o644))

		_, err := LoadConfig(path)
		assert.True(t, errors.Is(err, validation.ErrOutOfRange))
	})
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := DefaultConfig()
	cfg.Vehicle.FrontalDrag = 0.3
	cfg.Window.Title = "Test"

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveConfig_BadPath(t *testing.T) {
	err := SaveConfig(DefaultConfig(), filepath.Join(t.TempDir(), "missing", "dir", "cfg.yaml"))
	assert.ErrorContains(t, err, "failed to write config file")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"few_segments", func(c *Config) { c.Scenery.Segments = 2 }},
		{"negative_offset", func(c *Config) { c.Scenery.HeightMapOffset = -1 }},
		{"zero_axis_rate", func(c *Config) { c.Input.AxisRate = 0 }},
		{"zero_time_step", func(c *Config) { c.Loop.TimeStep = 0 }},
		{"frame_delta_below_step", func(c *Config) { c.Loop.MaxFrameDelta = 0.001 }},
		{"escaping_asset", func(c *Config) { c.Assets.MapSVG = "../map.svg" }},
		{"bad_decoration_name", func(c *Config) { c.Assets.Decorations = []string{"big tree"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), "invalid config")
		})
	}
}
