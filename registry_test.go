package tqdm

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestRegistryUniqueIDs(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				rec := r.add(10, DefaultConfig(), time.Now())
				r.Update(rec.id, 1, time.Now())
				if rec.id%3 == 0 {
					r.Remove(rec.id)
				}
			}
		}()
	}
	wg.Wait()

	snapshots := r.Snapshot()
	if len(snapshots) != r.Len() {
		t.Fatalf("Expected %d snapshots, got %d", r.Len(), len(snapshots))
	}
	if want := 800 - 800/3; len(snapshots) != want {
		t.Errorf("Expected %d live bars, got %d", want, len(snapshots))
	}
	for i := 1; i < len(snapshots); i++ {
		if snapshots[i-1].ID >= snapshots[i].ID {
			t.Fatalf("Ids are not ascending: %d, %d", snapshots[i-1].ID, snapshots[i].ID)
		}
	}
	for _, s := range snapshots {
		if s.ID%3 == 0 {
			t.Errorf("Removed bar %d is still live", s.ID)
		}
		if s.Current != 1 {
			t.Errorf("Bar %d: expected current 1, got %d", s.ID, s.Current)
		}
	}
}

func TestRegistryMissingID(t *testing.T) {
	r := NewRegistry()
	rec := r.add(10, DefaultConfig(), time.Now())

	if r.Update(rec.id+1, 1, time.Now()) {
		t.Error("Update of unknown id reported success")
	}
	if r.Update(rec.id, -1, time.Now()) {
		t.Error("Update with negative delta reported success")
	}
	if _, ok := r.Remove(rec.id); !ok {
		t.Fatal("Remove of live id failed")
	}
	if _, ok := r.Remove(rec.id); ok {
		t.Error("Second Remove reported success")
	}
	if r.Update(rec.id, 1, time.Now()) {
		t.Error("Update of removed id reported success")
	}
	if _, err := r.configure(rec.id, func(*Config) error { return nil }); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got: %v", err)
	}
}

func TestRegistryUnboundedRate(t *testing.T) {
	r := NewRegistry()
	t0 := time.Now()
	rec := r.add(Unbounded, DefaultConfig(), t0)

	r.Update(rec.id, 1, t0)
	s, _ := r.Get(rec.id)
	if s.RateKnown {
		t.Errorf("Rate is known after single update: %v", s.Rate)
	}

	t1 := t0.Add(time.Second)
	r.Update(rec.id, 1, t1)
	s, _ = r.Get(rec.id)
	line := RenderLine(s, t1, 80)
	if !strings.HasPrefix(line, "2it [") {
		t.Errorf("Expected %q prefix, got %q", "2it [", line)
	}
	if strings.Contains(line, "?it/s") {
		t.Errorf("Rate is unknown: %q", line)
	}
}

func TestRegistrySmoothing(t *testing.T) {
	testCases := map[string]struct {
		options []BarOption
		steps   []int64
		want    float64
	}{
		"no smoothing": {
			options: []BarOption{BarSmoothing(1)},
			steps:   []int64{1, 10},
			want:    10,
		},
		"default": {
			steps: []int64{1, 5, 10},
			want:  6.5,
		},
		"latest wins": {
			options: []BarOption{BarSmoothing(1)},
			steps:   []int64{1, 5, 10, 2},
			want:    2,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := cfg.apply(tc.options); err != nil {
				t.Fatal(err)
			}
			r := NewRegistry()
			now := time.Now()
			rec := r.add(100, cfg, now)
			for _, n := range tc.steps {
				r.Update(rec.id, n, now)
				now = now.Add(time.Second)
			}
			s, _ := r.Get(rec.id)
			if !s.RateKnown || math.Abs(s.Rate-tc.want) > 1e-9 {
				t.Errorf("Expected rate %v, got %v (known: %v)", tc.want, s.Rate, s.RateKnown)
			}
		})
	}
}

func TestRegistryConfigureError(t *testing.T) {
	r := NewRegistry()
	cfg := DefaultConfig()
	cfg.Label = "keep"
	rec := r.add(10, cfg, time.Now())

	_, err := r.configure(rec.id, func(c *Config) error {
		return c.apply([]BarOption{BarLabel("changed"), BarStyleName("nope")})
	})
	if !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("Expected ErrUnknownStyle, got: %v", err)
	}
	s, _ := r.Get(rec.id)
	if s.Config.Label != "keep" || s.Config.Style.Kind() != KindBlock {
		t.Errorf("Config changed on error: %+v", s.Config)
	}
}

func TestRegistryConfigureKeepsRate(t *testing.T) {
	r := NewRegistry()
	now := time.Now()
	rec := r.add(100, DefaultConfig(), now)
	r.Update(rec.id, 1, now)
	r.Update(rec.id, 4, now.Add(time.Second))

	_, err := r.configure(rec.id, func(c *Config) error {
		return c.apply([]BarOption{BarSmoothing(1)})
	})
	if err != nil {
		t.Fatal(err)
	}
	s, _ := r.Get(rec.id)
	if s.Rate != 4 {
		t.Errorf("Expected rate %v carried over, got %v", 4.0, s.Rate)
	}
	r.Update(rec.id, 8, now.Add(2*time.Second))
	s, _ = r.Get(rec.id)
	if s.Rate != 8 {
		t.Errorf("Expected unsmoothed rate %v, got %v", 8.0, s.Rate)
	}
}

func TestRegistrySetTotal(t *testing.T) {
	r := NewRegistry()
	rec := r.add(10, DefaultConfig(), time.Now())
	r.SetTotal(rec.id, -5)
	if s, _ := r.Get(rec.id); s.Total != Unbounded || s.Bounded() {
		t.Errorf("Expected unbounded, got total %d", s.Total)
	}
	r.SetTotal(rec.id, 20)
	if s, _ := r.Get(rec.id); s.Total != 20 {
		t.Errorf("Expected total %d, got %d", 20, s.Total)
	}
}
