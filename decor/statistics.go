package decor

import "time"

// Unknown is rendered in place of a value which cannot be computed yet.
const Unknown = "?"

// Statistics is a point-in-time copy of bar state, which gets passed
// to segment functions.
type Statistics struct {
	ID        int
	Label     string
	Total     int64
	Bounded   bool
	Current   int64
	Elapsed   time.Duration
	Rate      float64
	RateKnown bool
	Unit      Unit
}

// Completed reports whether bounded progress reached its total.
func (s Statistics) Completed() bool {
	return s.Bounded && s.Current >= s.Total
}

// Remaining is Total-Current floored at 0. The second result is false
// for unbounded progress.
func (s Statistics) Remaining() (int64, bool) {
	if !s.Bounded {
		return 0, false
	}
	if s.Current >= s.Total {
		return 0, true
	}
	return s.Total - s.Current, true
}
