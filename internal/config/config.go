// Package config loads and validates command line configuration via
// Viper. Values come from defaults, an optional config file, TQDM_
// prefixed environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vbauerster/tqdm"
	"github.com/vbauerster/tqdm/decor"
)

// EnvPrefix is prefix of environment variables, e.g. TQDM_BAR_STYLE.
const EnvPrefix = "TQDM"

// Config captures all knobs of the tqdm command.
type Config struct {
	Bar      BarConfig      `mapstructure:"bar"`
	Progress ProgressConfig `mapstructure:"progress"`
	Log      LogConfig      `mapstructure:"log"`
}

// BarConfig describes the bar of pipe mode and demo bars.
type BarConfig struct {
	Desc        string        `mapstructure:"desc"`
	Total       int64         `mapstructure:"total"`
	Style       string        `mapstructure:"style"`
	Width       int           `mapstructure:"width"`
	Smoothing   float64       `mapstructure:"smoothing"`
	EwmaAge     float64       `mapstructure:"ewma_age"`
	Clear       bool          `mapstructure:"clear"`
	MinIters    int64         `mapstructure:"miniters"`
	MinInterval time.Duration `mapstructure:"mininterval"`
	Bytes       bool          `mapstructure:"bytes"`
	Unit        string        `mapstructure:"unit"`
}

// ProgressConfig controls the bar container.
type ProgressConfig struct {
	RefreshRate time.Duration `mapstructure:"refresh_rate"`
	Width       int           `mapstructure:"width"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"desc":         "bar.desc",
	"total":        "bar.total",
	"style":        "bar.style",
	"width":        "bar.width",
	"smoothing":    "bar.smoothing",
	"ewma-age":     "bar.ewma_age",
	"clear":        "bar.clear",
	"miniters":     "bar.miniters",
	"mininterval":  "bar.mininterval",
	"bytes":        "bar.bytes",
	"unit":         "bar.unit",
	"refresh-rate": "progress.refresh_rate",
	"log-level":    "log.level",
}

// Load builds a Config from defaults, file at path, environment and
// flags. Empty path skips the file, nil flags skips flags.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %q: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("bar.desc", "")
	v.SetDefault("bar.total", tqdm.Unbounded)
	v.SetDefault("bar.style", tqdm.KindBlock.String())
	v.SetDefault("bar.width", 0)
	v.SetDefault("bar.smoothing", 0.3)
	v.SetDefault("bar.ewma_age", 0)
	v.SetDefault("bar.clear", false)
	v.SetDefault("bar.miniters", tqdm.DefaultMinIters)
	v.SetDefault("bar.mininterval", tqdm.DefaultMinInterval)
	v.SetDefault("bar.bytes", false)
	v.SetDefault("bar.unit", "")
	v.SetDefault("progress.refresh_rate", 200*time.Millisecond)
	v.SetDefault("progress.width", 0)
	v.SetDefault("log.level", zerolog.LevelInfoValue)
}

// Validate checks values by building options out of them.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.BarOptions(); err != nil {
		errs = append(errs, fmt.Errorf("bar: %w", err))
	}
	if c.Progress.RefreshRate < 0 {
		errs = append(errs, errors.New("progress.refresh_rate must be >= 0"))
	}
	if c.Progress.Width < 0 {
		errs = append(errs, errors.New("progress.width must be >= 0"))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// ParseStyle resolves bar style by name, falling back to custom glyphs.
func (c BarConfig) ParseStyle() (tqdm.Style, error) {
	style, err := tqdm.ParseStyle(c.Style)
	if err == nil {
		return style, nil
	}
	if custom, cerr := tqdm.CustomStyle(c.Style); cerr == nil {
		return custom, nil
	}
	return tqdm.Style{}, err
}

// ParseUnit resolves counters unit. No unit in bytes mode means
// decor.UnitKiB.
func (c BarConfig) ParseUnit() (decor.Unit, error) {
	unit, ok := decor.ParseUnit(c.Unit)
	if !ok {
		return decor.UnitNone, fmt.Errorf("%w: %q", tqdm.ErrUnknownUnit, c.Unit)
	}
	if unit == decor.UnitNone && c.Bytes {
		unit = decor.UnitKiB
	}
	return unit, nil
}

// BarOptions converts bar config into bar options. Every option is
// checked right away, so returned error is the one AddBar would give.
func (c Config) BarOptions() ([]tqdm.BarOption, error) {
	b := c.Bar
	style, err := b.ParseStyle()
	if err != nil {
		return nil, err
	}
	unit, err := b.ParseUnit()
	if err != nil {
		return nil, err
	}
	options := []tqdm.BarOption{
		tqdm.BarLabel(b.Desc),
		tqdm.BarStyle(style),
		tqdm.BarWidth(b.Width),
		tqdm.BarSmoothing(b.Smoothing),
		tqdm.BarOptional(tqdm.BarEwmaAge(b.EwmaAge), b.EwmaAge != 0),
		tqdm.BarClearOnClose(b.Clear),
		tqdm.BarMinIters(b.MinIters),
		tqdm.BarMinInterval(b.MinInterval),
		tqdm.BarUnit(unit),
	}
	scratch := tqdm.DefaultConfig()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		if err := opt(&scratch); err != nil {
			return nil, err
		}
	}
	if b.MinInterval < 0 {
		return nil, errors.New("mininterval must be >= 0")
	}
	return options, nil
}

// ContainerOptions converts progress config into container options.
func (c Config) ContainerOptions() []tqdm.ContainerOption {
	return []tqdm.ContainerOption{
		tqdm.WithRefreshRate(c.Progress.RefreshRate),
		tqdm.ContainerOptional(tqdm.WithWidth(c.Progress.Width), c.Progress.Width > 0),
	}
}

// ParsedLevel returns parsed log level, info if it cannot be parsed.
func (c LogConfig) ParsedLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
