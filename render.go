package tqdm

import (
	"time"

	"github.com/vbauerster/tqdm/cwriter"
	"github.com/vbauerster/tqdm/decor"
	"github.com/vbauerster/tqdm/internal"
)

// Unbounded total means bar has no known end.
const Unbounded int64 = -1

// Snapshot is a consistent point-in-time copy of one bar's record.
type Snapshot struct {
	ID         int
	CreatedAt  time.Time
	LastUpdate time.Time
	Current    int64
	Total      int64
	Rate       float64
	RateKnown  bool
	Config     Config
}

// Bounded reports whether total is known.
func (s Snapshot) Bounded() bool {
	return s.Total >= 0
}

// Statistics converts snapshot into decor.Statistics as of now.
func (s Snapshot) Statistics(now time.Time) decor.Statistics {
	elapsed := now.Sub(s.CreatedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return decor.Statistics{
		ID:        s.ID,
		Label:     s.Config.Label,
		Total:     s.Total,
		Bounded:   s.Bounded(),
		Current:   s.Current,
		Elapsed:   elapsed,
		Rate:      s.Rate,
		RateKnown: s.RateKnown,
		Unit:      s.Config.Unit,
	}
}

// RenderLine formats one status line. Bounded bars look like
//
//	label: 50%|█████     | 50/100 [00:05<00:05, 10.00it/s]
//
// and span exactly the resolved width, unless head and tail alone
// exceed it. Unbounded bars have no glyph section:
//
//	label: 42it [00:05, 8.40it/s]
//
// Width resolves to the bar's own fixed width, then to width argument,
// then to cwriter.DefaultColumns.
func RenderLine(s Snapshot, now time.Time, width int) string {
	st := s.Statistics(now)
	if !st.Bounded {
		return decor.Name(st) + decor.Counters(st) + " [" + decor.Elapsed(st) + ", " + decor.Speed(st) + "]"
	}

	if width < 1 {
		width = cwriter.DefaultColumns
	}
	width = internal.CheckRequestedWidth(s.Config.Width, width)

	head := decor.Name(st) + decor.Percentage(st) + "|"
	tail := "| " + decor.Counters(st) + " [" + decor.Elapsed(st) + "<" + decor.ETA(st) + ", " + decor.Speed(st) + "]"

	fill := max(width-internal.StringWidth(head)-internal.StringWidth(tail), 0)
	return head + s.Config.Style.fill(fill, st.Total, st.Current) + tail
}
