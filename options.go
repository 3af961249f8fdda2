package tqdm

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// ContainerOption is a func option to alter default behavior of a bar
// container. Container options are applied in New.
type ContainerOption func(*pConf)

type pConf struct {
	output      io.Writer
	width       int
	autoRefresh bool
	refreshRate time.Duration
	logger      zerolog.Logger
}

// WithOutput overrides default os.Stderr output. Setting it to nil
// disables any output.
func WithOutput(w io.Writer) ContainerOption {
	return func(c *pConf) {
		if w == nil {
			w = io.Discard
		}
		c.output = w
	}
}

// WithWidth sets width used when terminal size cannot be determined.
// Default is 80.
func WithWidth(width int) ContainerOption {
	return func(c *pConf) {
		c.width = width
	}
}

// WithAutoRefresh forces full rendering even if output is not a
// terminal.
func WithAutoRefresh() ContainerOption {
	return func(c *pConf) {
		c.autoRefresh = true
	}
}

// WithRefreshRate re-renders all bars periodically, so elapsed time
// keeps going between slow updates. Zero disables periodic refresh.
func WithRefreshRate(d time.Duration) ContainerOption {
	return func(c *pConf) {
		c.refreshRate = max(d, 0)
	}
}

// WithLogger sets logger for diagnostics. Default is zerolog.Nop().
func WithLogger(logger zerolog.Logger) ContainerOption {
	return func(c *pConf) {
		c.logger = logger
	}
}

// WithDebugOutput sets debug level logger writing to w.
func WithDebugOutput(w io.Writer) ContainerOption {
	return func(c *pConf) {
		if w == nil {
			return
		}
		c.logger = zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Str("component", "tqdm").Logger()
	}
}

// ContainerOptional will return provided option only when cond is true.
func ContainerOptional(option ContainerOption, cond bool) ContainerOption {
	if cond {
		return option
	}
	return nil
}
