package decor

import (
	"math"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{999 * time.Millisecond, "00:00"},
		{61 * time.Second, "01:01"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour, "01:00:00"},
		{25*time.Hour + 2*time.Minute + 3*time.Second, "25:02:03"},
	}
	for _, tc := range tests {
		if got := FormatTime(tc.d); got != tc.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestEstimateETA(t *testing.T) {
	tests := []struct {
		name      string
		rate      float64
		known     bool
		remaining int64
		want      time.Duration
		ok        bool
	}{
		{"unknown rate", 10, false, 100, 0, false},
		{"zero rate", 0, true, 100, 0, false},
		{"negative remaining", 10, true, -1, 0, false},
		{"simple", 10, true, 100, 10 * time.Second, true},
		{"nothing left", 10, true, 0, 0, true},
		{"overflow", 1e-300, true, math.MaxInt64, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := EstimateETA(tc.rate, tc.known, tc.remaining)
			if ok != tc.ok || got != tc.want {
				t.Errorf("EstimateETA = (%v, %t), want (%v, %t)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestSegments(t *testing.T) {
	st := Statistics{
		Label:     "dl",
		Total:     100,
		Bounded:   true,
		Current:   50,
		Elapsed:   5 * time.Second,
		Rate:      10,
		RateKnown: true,
	}
	checks := []struct {
		name string
		got  string
		want string
	}{
		{"Name", Name(st), "dl: "},
		{"Percentage", Percentage(st), " 50%"},
		{"Counters", Counters(st), "50/100"},
		{"Elapsed", Elapsed(st), "00:05"},
		{"ETA", ETA(st), "00:05"},
		{"Speed", Speed(st), "10.00it/s"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: want %q, got %q", c.name, c.want, c.got)
		}
	}

	st.Bounded = false
	if got := Counters(st); got != "50it" {
		t.Errorf("Counters unbounded: want %q, got %q", "50it", got)
	}
	if got := ETA(st); got != Unknown {
		t.Errorf("ETA unbounded: want %q, got %q", Unknown, got)
	}
	st.Label = ""
	if got := Name(st); got != "" {
		t.Errorf("Name empty: want empty, got %q", got)
	}
}
