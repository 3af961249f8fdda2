package internal

import (
	"github.com/acarl005/stripansi"
	"github.com/mattn/go-runewidth"
)

// CheckRequestedWidth returns requested width if it is positive,
// available width otherwise.
func CheckRequestedWidth(requested, available int) int {
	if requested < 1 {
		return available
	}
	return requested
}

// StringWidth is display width of s, ANSI escape sequences excluded.
func StringWidth(s string) int {
	return runewidth.StringWidth(stripansi.Strip(s))
}

// FitWidth pads s with spaces or truncates it so that its display
// width is exactly width.
func FitWidth(s string, width int) string {
	if width < 1 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}

// Truncate cuts s to at most width display cells.
func Truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}
