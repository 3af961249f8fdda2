package decor

import (
	"github.com/VividCortex/ewma"
)

// DefaultSmoothing is the weight of the newest sample in NewEMA.
const DefaultSmoothing = 0.3

// MovingAverage is the interface that computes a moving average over a
// time-series stream of numbers. It is the same interface implemented
// by "github.com/VividCortex/ewma" averages.
type MovingAverage = ewma.MovingAverage

type ema struct {
	alpha float64
	value float64
	set   bool
}

// NewEMA returns exponential moving average with the given weight of
// the newest sample. First added value is stored as is. Alpha outside
// of (0,1] is replaced with DefaultSmoothing.
func NewEMA(alpha float64) MovingAverage {
	if !(alpha > 0 && alpha <= 1) {
		alpha = DefaultSmoothing
	}
	return &ema{alpha: alpha}
}

func (s *ema) Add(v float64) {
	if !s.set {
		s.Set(v)
		return
	}
	s.value = s.alpha*v + (1-s.alpha)*s.value
}

func (s *ema) Value() float64 {
	return s.value
}

func (s *ema) Set(v float64) {
	s.value = v
	s.set = true
}

// NewEwma returns "github.com/VividCortex/ewma" moving average over
// approximately age samples. Zero age means ewma.AVG_METRIC_AGE.
func NewEwma(age float64) MovingAverage {
	if age <= 0 {
		return ewma.NewMovingAverage()
	}
	return ewma.NewMovingAverage(age)
}
