package internal

import "math/bits"

// Fraction returns current/total clamped to [0,1].
// Zero or negative total yields 1 once current has reached it, 0 otherwise.
func Fraction(total, current int64) float64 {
	if total <= 0 {
		if current >= total {
			return 1
		}
		return 0
	}
	if current <= 0 {
		return 0
	}
	if current >= total {
		return 1
	}
	return float64(current) / float64(total)
}

// Percentage is floor(100 * current/total) clamped to [0,100], computed
// in integers so that exact percentages don't round down.
func Percentage(total, current int64) int {
	switch {
	case total <= 0:
		return int(100 * Fraction(total, current))
	case current <= 0:
		return 0
	case current >= total:
		return 100
	}
	hi, lo := bits.Mul64(100, uint64(current))
	p, _ := bits.Div64(hi, lo, uint64(total))
	return int(p)
}
