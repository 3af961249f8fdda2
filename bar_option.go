package tqdm

import (
	"fmt"
	"math"
	"time"

	"github.com/vbauerster/tqdm/decor"
)

// Default throttle settings.
const (
	DefaultMinIters    = 1
	DefaultMinInterval = time.Second / 24
)

// Config is per bar configuration.
type Config struct {
	// Label is printed in front of the line, followed by ": ".
	Label string
	// Width is fixed line width, zero follows terminal.
	Width int
	Style Style
	// Smoothing is EMA factor applied to the newest rate sample.
	Smoothing float64
	// EwmaAge, when positive, replaces EMA with ewma.MovingAverage of
	// the given age.
	EwmaAge float64
	// ClearOnClose erases the line on close instead of leaving it
	// above the live bars.
	ClearOnClose bool
	MinIters     int64
	MinInterval  time.Duration
	// Unit scales counters and rate, decor.UnitNone prints plain counts.
	Unit decor.Unit
}

// DefaultConfig returns configuration every new bar starts from.
func DefaultConfig() Config {
	return Config{
		Style:       StyleBlock,
		Smoothing:   decor.DefaultSmoothing,
		MinIters:    DefaultMinIters,
		MinInterval: DefaultMinInterval,
	}
}

func (c Config) movingAverage() decor.MovingAverage {
	if c.EwmaAge > 0 {
		return decor.NewEwma(c.EwmaAge)
	}
	return decor.NewEMA(c.Smoothing)
}

// BarOption is a func option to alter default bar configuration. It is
// used at bar creation and with Bar.Configure. Option which returns
// error leaves configuration intact.
type BarOption func(*Config) error

func (c *Config) apply(options []BarOption) error {
	for _, opt := range options {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// BarLabel sets text printed in front of the bar.
func BarLabel(label string) BarOption {
	return func(c *Config) error {
		c.Label = label
		return nil
	}
}

// BarWidth sets line width independent of the terminal. Zero restores
// terminal width.
func BarWidth(width int) BarOption {
	return func(c *Config) error {
		if width < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidWidth, width)
		}
		c.Width = width
		return nil
	}
}

// BarStyle sets glyph style.
func BarStyle(style Style) BarOption {
	return func(c *Config) error {
		c.Style = style
		return nil
	}
}

// BarStyleName sets predefined glyph style by name.
func BarStyleName(name string) BarOption {
	return func(c *Config) error {
		style, err := ParseStyle(name)
		if err != nil {
			return err
		}
		c.Style = style
		return nil
	}
}

// BarCustomStyle sets custom glyph style, see CustomStyle.
func BarCustomStyle(glyphs string) BarOption {
	return func(c *Config) error {
		style, err := CustomStyle(glyphs)
		if err != nil {
			return err
		}
		c.Style = style
		return nil
	}
}

// BarSmoothing sets EMA smoothing factor in (0,1]. Value of 1 disables
// smoothing, rate is the latest sample then.
func BarSmoothing(alpha float64) BarOption {
	return func(c *Config) error {
		if math.IsNaN(alpha) || alpha <= 0 || alpha > 1 {
			return fmt.Errorf("%w: %v", ErrInvalidSmoothing, alpha)
		}
		c.Smoothing = alpha
		c.EwmaAge = 0
		return nil
	}
}

// BarEwmaAge switches rate estimation to ewma.MovingAverage of the
// given age, which is approximately number of samples to average over.
func BarEwmaAge(age float64) BarOption {
	return func(c *Config) error {
		if math.IsNaN(age) || age < 1 {
			return fmt.Errorf("%w: ewma age %v", ErrInvalidSmoothing, age)
		}
		c.EwmaAge = age
		return nil
	}
}

// BarUnit sets unit of counters and rate, e.g. decor.UnitKiB renders
// "1.50MiB/10.00MiB".
func BarUnit(unit decor.Unit) BarOption {
	return func(c *Config) error {
		if unit > decor.UnitKB {
			return fmt.Errorf("%w: %s", ErrUnknownUnit, unit)
		}
		c.Unit = unit
		return nil
	}
}

// BarClearOnClose sets whether line is erased on close.
func BarClearOnClose(clear bool) BarOption {
	return func(c *Config) error {
		c.ClearOnClose = clear
		return nil
	}
}

// BarMinIters sets number of steps to accumulate before flushing them
// to the registry. Values below 1 are treated as 1.
func BarMinIters(n int64) BarOption {
	return func(c *Config) error {
		c.MinIters = max(n, 1)
		return nil
	}
}

// BarMinInterval sets minimum time between two flushes.
func BarMinInterval(d time.Duration) BarOption {
	return func(c *Config) error {
		c.MinInterval = max(d, 0)
		return nil
	}
}

// BarOptional will return provided option only when cond is true.
func BarOptional(option BarOption, cond bool) BarOption {
	if cond {
		return option
	}
	return nil
}

// BarOptOn will return provided option only when predicate evaluates
// to true.
func BarOptOn(option BarOption, predicate func() bool) BarOption {
	if predicate() {
		return option
	}
	return nil
}
