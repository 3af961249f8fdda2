package decor

import (
	"fmt"
	"time"
)

// FormatTime formats d as MM:SS, or as HH:MM:SS once d is at least an
// hour. Negative durations are formatted as zero.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	hours := secs / 3600
	minutes := secs / 60 % 60
	seconds := secs % 60
	if hours == 0 {
		return fmt.Sprintf("%02d:%02d", minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Elapsed segment.
func Elapsed(s Statistics) string {
	return FormatTime(s.Elapsed)
}
