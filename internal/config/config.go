// Package config loads the application configuration from defaults, an
// optional YAML file and HOUSE_ROADS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, with dots in keys
// replaced by underscores, e.g. HOUSE_ROADS_ANIMATION_INTERVAL.
const EnvPrefix = "HOUSE_ROADS"

// Config is the root configuration structure.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Map       MapConfig       `mapstructure:"map"`
	Animation AnimationConfig `mapstructure:"animation"`
	Window    WindowConfig    `mapstructure:"window"`
	Generate  GenerateConfig  `mapstructure:"generate"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`

	// LogFile additionally writes JSON logs to a rotated file when set.
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// MapConfig selects the houses and roads to show. An empty source uses the
// built-in sample map.
type MapConfig struct {
	Source string `mapstructure:"source" yaml:"source"`
}

type AnimationConfig struct {
	// Interval is the pause after every revealed tree edge.
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`

	// RevealDuration is how long drawing a single edge takes.
	RevealDuration time.Duration `mapstructure:"reveal_duration" yaml:"reveal_duration"`
}

type WindowConfig struct {
	Title  string  `mapstructure:"title" yaml:"title"`
	Width  int     `mapstructure:"width" yaml:"width"`
	Height int     `mapstructure:"height" yaml:"height"`
	Scale  float64 `mapstructure:"scale" yaml:"scale"`
}

type GenerateConfig struct {
	Seed       uint64  `mapstructure:"seed" yaml:"seed"`
	Count      int     `mapstructure:"count" yaml:"count"`
	Neighbours int     `mapstructure:"neighbours" yaml:"neighbours"`
	Width      float64 `mapstructure:"width" yaml:"width"`
	Height     float64 `mapstructure:"height" yaml:"height"`
	Speed      float64 `mapstructure:"speed" yaml:"speed"`
}

// SetDefaults registers the default value of every key. Keys without a
// default are not picked up from the environment.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)

	v.SetDefault("map.source", "")

	v.SetDefault("animation.interval", 600*time.Millisecond)
	v.SetDefault("animation.reveal_duration", 300*time.Millisecond)

	v.SetDefault("window.title", "House Roads")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.scale", 1.0)

	v.SetDefault("generate.seed", 1)
	v.SetDefault("generate.count", 12)
	v.SetDefault("generate.neighbours", 2)
	v.SetDefault("generate.width", 1200.0)
	v.SetDefault("generate.height", 800.0)
	v.SetDefault("generate.speed", 25.0)
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file at path into v and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Animation.Interval < 0 {
		errs = append(errs, fmt.Errorf("animation.interval must not be negative, got %s", c.Animation.Interval))
	}

	if c.Animation.RevealDuration < 0 {
		errs = append(errs, fmt.Errorf("animation.reveal_duration must not be negative, got %s", c.Animation.RevealDuration))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %g", c.Window.Scale))
	}

	switch c.Logger.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format))
	}

	return errors.Join(errs...)
}
