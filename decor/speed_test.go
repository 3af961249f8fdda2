package decor

import (
	"math"
	"testing"
	"time"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRateEstimatorUnknownUntilObserved(t *testing.T) {
	e := NewRateEstimator(nil)
	if _, ok := e.Rate(); ok {
		t.Error("Expected unknown rate before any observation")
	}
	e.Observe(0, 10)
	if _, ok := e.Rate(); ok {
		t.Error("Expected zero dt to be ignored")
	}
	e.Observe(-time.Second, 10)
	if _, ok := e.Rate(); ok {
		t.Error("Expected negative dt to be ignored")
	}
}

func TestRateEstimatorFirstObservationStoredAsIs(t *testing.T) {
	e := NewRateEstimator(NewEMA(0.3))
	e.Observe(2*time.Second, 10)
	rate, ok := e.Rate()
	if !ok || !approx(rate, 5) {
		t.Errorf("Expected rate 5, got: %v (known %t)", rate, ok)
	}
}

func TestRateEstimatorSmoothing(t *testing.T) {
	tests := []struct {
		name    string
		alpha   float64
		samples []float64
		want    float64
	}{
		{"alpha 1.0 converges immediately", 1.0, []float64{10, 10, 10}, 10},
		{"alpha 1.0 follows last sample", 1.0, []float64{5, 10}, 10},
		{"alpha 0.3 from 5 to 10", 0.3, []float64{5, 10}, 6.5},
		{"alpha 0.3 steady", 0.3, []float64{10, 10, 10, 10}, 10},
		{"alpha 0.5 two steps", 0.5, []float64{4, 8, 16}, 11},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewRateEstimator(NewEMA(tc.alpha))
			for _, n := range tc.samples {
				e.Observe(time.Second, int64(n))
			}
			rate, ok := e.Rate()
			if !ok || !approx(rate, tc.want) {
				t.Errorf("Expected rate %v, got: %v", tc.want, rate)
			}
		})
	}
}

func TestRateEstimatorReset(t *testing.T) {
	e := NewRateEstimator(NewEMA(0.3))
	e.Observe(time.Second, 5)
	e.Reset(NewEMA(1))
	if rate, _ := e.Rate(); !approx(rate, 5) {
		t.Errorf("Expected carried over rate 5, got: %v", rate)
	}
	e.Observe(time.Second, 10)
	if rate, _ := e.Rate(); !approx(rate, 10) {
		t.Errorf("Expected rate 10, got: %v", rate)
	}
}

func TestRateEstimatorWithEwma(t *testing.T) {
	e := NewRateEstimator(NewEwma(30))
	e.Observe(time.Second, 10)
	rate, ok := e.Rate()
	if !ok || !approx(rate, 10) {
		t.Errorf("Expected rate 10, got: %v", rate)
	}
}

func TestNewEMAInvalidAlpha(t *testing.T) {
	for _, alpha := range []float64{0, -1, 1.5, math.NaN()} {
		ma := NewEMA(alpha)
		ma.Add(5)
		ma.Add(10)
		if got := ma.Value(); !approx(got, 6.5) {
			t.Errorf("NewEMA(%v): expected default smoothing value 6.5, got: %v", alpha, got)
		}
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		rate  float64
		known bool
		want  string
	}{
		{0, false, "?"},
		{1, true, "1.00"},
		{1234.5678, true, "1234.57"},
		{math.Inf(1), true, "?"},
		{math.NaN(), true, "?"},
		{-1, true, "?"},
	}
	for _, tc := range tests {
		if got := FormatRate(tc.rate, tc.known); got != tc.want {
			t.Errorf("FormatRate(%v, %t) = %q, want %q", tc.rate, tc.known, got, tc.want)
		}
	}
}
