package decor

import (
	"math"
	"strconv"
	"time"
)

// RateEstimator smooths instantaneous items/second samples.
type RateEstimator struct {
	average MovingAverage
	samples int
}

// NewRateEstimator returns RateEstimator backed by the given average.
// Nil average means NewEMA(DefaultSmoothing).
func NewRateEstimator(average MovingAverage) *RateEstimator {
	if average == nil {
		average = NewEMA(DefaultSmoothing)
	}
	return &RateEstimator{average: average}
}

// Observe feeds n items processed during dt. First observation is
// stored as is, subsequent ones are smoothed. Non-positive dt is ignored.
func (e *RateEstimator) Observe(dt time.Duration, n int64) {
	if dt <= 0 || n < 0 {
		return
	}
	v := float64(n) / dt.Seconds()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return
	}
	if e.samples == 0 {
		e.average.Set(v)
	} else {
		e.average.Add(v)
	}
	e.samples++
}

// Rate returns smoothed rate in items/second and whether any
// observation has been made.
func (e *RateEstimator) Rate() (float64, bool) {
	if e.samples == 0 {
		return 0, false
	}
	return e.average.Value(), true
}

// Reset replaces underlying average, carrying current value over.
func (e *RateEstimator) Reset(average MovingAverage) {
	if average == nil {
		return
	}
	if e.samples != 0 {
		average.Set(e.average.Value())
	}
	e.average = average
}

// FormatRate formats rate with two decimals or returns Unknown.
func FormatRate(rate float64, known bool) string {
	if !known || math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return Unknown
	}
	return strconv.FormatFloat(rate, 'f', 2, 64)
}

// Speed segment: "{rate}it/s", or scaled "{rate}/s" with a byte unit.
func Speed(s Statistics) string {
	if s.Unit == UnitNone {
		return FormatRate(s.Rate, s.RateKnown) + "it/s"
	}
	if FormatRate(s.Rate, s.RateKnown) == Unknown {
		return Unknown + "/s"
	}
	return s.Unit.amount(int64(math.Round(s.Rate))) + "/s"
}
