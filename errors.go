package tqdm

import "errors"

var (
	// ErrUnknownStyle is returned when style name doesn't match any
	// predefined style.
	ErrUnknownStyle = errors.New("unknown style")

	// ErrInvalidStyle is returned for custom glyph sequence which cannot
	// be rendered.
	ErrInvalidStyle = errors.New("invalid style")

	// ErrInvalidSmoothing is returned for smoothing factor outside of (0,1].
	ErrInvalidSmoothing = errors.New("smoothing factor must be in (0,1]")

	// ErrInvalidWidth is returned for negative bar width.
	ErrInvalidWidth = errors.New("invalid width")

	// ErrUnknownUnit is returned for unit outside of decor units.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrClosed is returned when configuring a closed bar.
	ErrClosed = errors.New("bar is closed")
)

// ErrShutdown is returned when adding a bar after Progress.Wait has
// returned or the container context is done.
var ErrShutdown = errors.New("progress is shut down")
