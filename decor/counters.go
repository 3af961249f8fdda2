package decor

import (
	"fmt"
	"strconv"

	"github.com/vbauerster/tqdm/internal"
)

// Name segment: "{label}: " or nothing for empty label.
func Name(s Statistics) string {
	if s.Label == "" {
		return ""
	}
	return s.Label + ": "
}

// Percentage segment: right aligned "{percent:>3}%".
func Percentage(s Statistics) string {
	return fmt.Sprintf("%3d%%", internal.Percentage(s.Total, s.Current))
}

// Counters segment: "{current}/{total}", or "{current}it" when
// unbounded. With a byte unit amounts are scaled, e.g.
// "1.50MiB/10.00MiB" and "1.50MiB".
func Counters(s Statistics) string {
	if !s.Bounded {
		if s.Unit == UnitNone {
			return strconv.FormatInt(s.Current, 10) + "it"
		}
		return s.Unit.amount(s.Current)
	}
	return s.Unit.amount(s.Current) + "/" + s.Unit.amount(s.Total)
}
