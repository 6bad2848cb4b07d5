// pkg/config/config.go
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-airboat/pkg/input"
	"github.com/opd-ai/go-airboat/pkg/logging"
	"github.com/opd-ai/go-airboat/pkg/scenery"
	"github.com/opd-ai/go-airboat/pkg/validation"
	"github.com/opd-ai/go-airboat/pkg/vehicle"
)

// EnvPrefix prefixes environment overrides, e.g. AIRBOAT_VEHICLE_THRUST.
const EnvPrefix = "AIRBOAT"

// Config contains the full simulator configuration
type Config struct {
	LogLevel string           `mapstructure:"logLevel" yaml:"logLevel"`
	Vehicle  vehicle.Settings `mapstructure:"vehicle" yaml:"vehicle"`
	Scenery  SceneryConfig    `mapstructure:"scenery" yaml:"scenery"`
	Input    InputConfig      `mapstructure:"input" yaml:"input"`
	Loop     LoopConfig       `mapstructure:"loop" yaml:"loop"`
	Assets   AssetsConfig     `mapstructure:"assets" yaml:"assets"`
	Window   WindowConfig     `mapstructure:"window" yaml:"window"`
}

// SceneryConfig controls how map assets become world geometry
type SceneryConfig struct {
	WorldSize       float64 `mapstructure:"worldSize" yaml:"worldSize"`
	Segments        int     `mapstructure:"segments" yaml:"segments"`
	HeightMapOffset float64 `mapstructure:"heightMapOffset" yaml:"heightMapOffset"`
	SurfaceMargin   float64 `mapstructure:"surfaceMargin" yaml:"surfaceMargin"`
	DecorationScale float64 `mapstructure:"decorationScale" yaml:"decorationScale"`
	// Seed fixes decoration rotations. Zero derives the seed from the asset checksums.
	Seed uint64 `mapstructure:"seed" yaml:"seed"`
}

// InputConfig contains control-axis tuning
type InputConfig struct {
	AxisRate float64 `mapstructure:"axisRate" yaml:"axisRate"`
}

// LoopConfig contains simulation timing, in seconds
type LoopConfig struct {
	TimeStep      float64 `mapstructure:"timeStep" yaml:"timeStep"`
	MaxFrameDelta float64 `mapstructure:"maxFrameDelta" yaml:"maxFrameDelta"`
}

// AssetsConfig names the scene asset files
type AssetsConfig struct {
	Dir         string   `mapstructure:"dir" yaml:"dir"`
	MapSVG      string   `mapstructure:"mapSvg" yaml:"mapSvg"`
	HeightMap   string   `mapstructure:"heightMap" yaml:"heightMap"`
	Decorations []string `mapstructure:"decorations" yaml:"decorations"`
}

// WindowConfig contains window settings for the interactive client
type WindowConfig struct {
	Title    string `mapstructure:"title" yaml:"title"`
	Width    int    `mapstructure:"width" yaml:"width"`
	Height   int    `mapstructure:"height" yaml:"height"`
	Headless bool   `mapstructure:"headless" yaml:"headless"`
}

// DefaultConfig returns the default simulator configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "INFO",
		Vehicle:  vehicle.DefaultSettings(),
		Scenery: SceneryConfig{
			WorldSize:       scenery.DefaultWorldSize,
			Segments:        scenery.DefaultSegments,
			HeightMapOffset: scenery.DefaultHeightMapOffset,
			SurfaceMargin:   scenery.DefaultSurfaceMargin,
			DecorationScale: scenery.DefaultDecorationScale,
		},
		Input: InputConfig{AxisRate: input.DefaultAxisRate},
		Loop: LoopConfig{
			TimeStep:      1.0 / 60,
			MaxFrameDelta: 0.1,
		},
		Assets: AssetsConfig{
			Dir:       "assets",
			MapSVG:    "map.svg",
			HeightMap: "heightMap.png",
			Decorations: []string{
				"bush_1", "bush_2", "bush_3",
				"grass_1", "grass_2",
				"rock",
				"tree", "tree_1", "tree_2",
			},
		},
		Window: WindowConfig{
			Title:  "Airboat",
			Width:  1024,
			Height: 768,
		},
	}
}

// LoadConfig builds a configuration from the defaults, the file at path (YAML or
// JSON, by extension) and AIRBOAT_* environment variables, in increasing precedence.
// An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		v.SetConfigType(configType(path))
		if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newViper() (*viper.Viper, error) {
	defaults, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal defaults: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, fmt.Errorf("failed to seed defaults: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("logLevel", logging.LevelEnvVar); err != nil {
		return nil, fmt.Errorf("failed to bind log level: %w", err)
	}
	return v, nil
}

func configType(path string) string {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "yml", "":
		return "yaml"
	default:
		return ext
	}
}

// SaveConfig writes cfg to path as YAML
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate rejects configurations the simulator cannot run with
func (c *Config) Validate() error {
	checks := []error{
		validation.ValidatePositive("scenery.worldSize", c.Scenery.WorldSize),
		validation.ValidateNonNegative("scenery.heightMapOffset", c.Scenery.HeightMapOffset),
		validation.ValidateNonNegative("scenery.surfaceMargin", c.Scenery.SurfaceMargin),
		validation.ValidatePositive("scenery.decorationScale", c.Scenery.DecorationScale),
		validation.ValidatePositive("input.axisRate", c.Input.AxisRate),
		validation.ValidatePositive("loop.timeStep", c.Loop.TimeStep),
		validation.ValidatePositive("loop.maxFrameDelta", c.Loop.MaxFrameDelta),
		validation.ValidatePositive("vehicle.baseCameraDistance", c.Vehicle.BaseCameraDistance),
		validation.ValidateAssetPath(c.Assets.MapSVG),
		validation.ValidateAssetPath(c.Assets.HeightMap),
	}
	if c.Scenery.Segments < 3 {
		checks = append(checks, fmt.Errorf("scenery.segments = %d (must be at least 3): %w", c.Scenery.Segments, validation.ErrOutOfRange))
	}
	if c.Loop.MaxFrameDelta < c.Loop.TimeStep {
		checks = append(checks, fmt.Errorf("loop.maxFrameDelta %g is below loop.timeStep %g: %w", c.Loop.MaxFrameDelta, c.Loop.TimeStep, validation.ErrOutOfRange))
	}
	for _, name := range c.Assets.Decorations {
		checks = append(checks, validation.ValidateTypeName(name))
	}

	for _, err := range checks {
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}
