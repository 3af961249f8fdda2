package decor

import (
	"math"
	"time"
)

// maxETASeconds keeps time.Duration from overflowing.
const maxETASeconds = float64(math.MaxInt64 / int64(time.Second))

// EstimateETA returns remaining/rate as a duration. It reports false
// if rate is unknown or not positive, or if the result doesn't fit into
// time.Duration.
func EstimateETA(rate float64, known bool, remaining int64) (time.Duration, bool) {
	if !known || !(rate > 0) || math.IsInf(rate, 0) || remaining < 0 {
		return 0, false
	}
	secs := float64(remaining) / rate
	if math.IsNaN(secs) || secs > maxETASeconds {
		return 0, false
	}
	return time.Duration(secs * float64(time.Second)), true
}

// ETA segment: FormatTime of estimated remaining time or Unknown.
func ETA(s Statistics) string {
	remaining, ok := s.Remaining()
	if !ok {
		return Unknown
	}
	if remaining == 0 {
		return FormatTime(0)
	}
	eta, ok := EstimateETA(s.Rate, s.RateKnown, remaining)
	if !ok {
		return Unknown
	}
	return FormatTime(eta)
}
