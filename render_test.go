package tqdm

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/vbauerster/tqdm/decor"
)

func TestRenderLine(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()
	labeled := cfg
	labeled.Label = "job"
	fixed := cfg
	fixed.Width = 30
	bytes := cfg
	bytes.Unit = decor.UnitKiB

	testCases := []struct {
		name   string
		snap   Snapshot
		width  int
		want   string
		wWidth int
	}{
		{
			name:   "half,no rate",
			snap:   Snapshot{CreatedAt: now, Total: 100, Current: 50, Config: cfg},
			width:  40,
			want:   " 50%|█████     | 50/100 [00:00<?, ?it/s]",
			wWidth: 40,
		},
		{
			name: "label,rate",
			snap: Snapshot{
				CreatedAt: now.Add(-5 * time.Second),
				Total:     100,
				Current:   50,
				Rate:      10,
				RateKnown: true,
				Config:    labeled,
			},
			width:  50,
			want:   "job:  50%|███▌   | 50/100 [00:05<00:05, 10.00it/s]",
			wWidth: 50,
		},
		{
			name:   "complete",
			snap:   Snapshot{CreatedAt: now.Add(-time.Minute), Total: 4, Current: 4, Rate: 1, RateKnown: true, Config: cfg},
			width:  43,
			want:   "100%|█████████| 4/4 [01:00<00:00, 1.00it/s]",
			wWidth: 43,
		},
		{
			name:   "too narrow",
			snap:   Snapshot{CreatedAt: now, Total: 100, Current: 50, Config: cfg},
			width:  10,
			want:   " 50%|| 50/100 [00:00<?, ?it/s]",
			wWidth: 30,
		},
		{
			name:   "fixed width",
			snap:   Snapshot{CreatedAt: now, Total: 10, Current: 0, Config: fixed},
			width:  120,
			want:   "  0%|  | 0/10 [00:00<?, ?it/s]",
			wWidth: 30,
		},
		{
			name:   "unbounded",
			snap:   Snapshot{CreatedAt: now.Add(-time.Second), Total: Unbounded, Current: 2, Rate: 1, RateKnown: true, Config: labeled},
			width:  80,
			want:   "job: 2it [00:01, 1.00it/s]",
			wWidth: 26,
		},
		{
			name: "bytes",
			snap: Snapshot{
				CreatedAt: now.Add(-time.Second),
				Total:     10 << 20,
				Current:   3 << 19,
				Rate:      1536,
				RateKnown: true,
				Config:    bytes,
			},
			width:  60,
			want:   " 15%|█▎       | 1.50MiB/10.00MiB [00:01<01:36:42, 1.50KiB/s]",
			wWidth: 60,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := RenderLine(tc.snap, now, tc.width)
			if got != tc.want {
				t.Errorf("Expected:\n%q\ngot:\n%q", tc.want, got)
			}
			if w := runewidth.StringWidth(got); w != tc.wWidth {
				t.Errorf("Expected width %d, got %d", tc.wWidth, w)
			}
		})
	}
}

func TestRenderLineDefaultWidth(t *testing.T) {
	now := time.Now()
	s := Snapshot{CreatedAt: now, Total: 3, Current: 1, Config: DefaultConfig()}
	if w := runewidth.StringWidth(RenderLine(s, now, 0)); w != 80 {
		t.Errorf("Expected width %d, got %d", 80, w)
	}
}

func TestRenderLineAnsiLabel(t *testing.T) {
	now := time.Now()
	cfg := DefaultConfig()
	cfg.Label = "\x1b[32mok\x1b[0m"
	s := Snapshot{CreatedAt: now, Total: 10, Current: 5, Config: cfg}
	got := RenderLine(s, now, 60)
	if !strings.HasPrefix(got, cfg.Label+":  50%|") {
		t.Errorf("Unexpected head: %q", got)
	}
	bar := got[strings.Index(got, "|")+1 : strings.LastIndex(got, "|")]
	if w := runewidth.StringWidth(bar); w != 60-len("ok:  50%|")-len("| 5/10 [00:00<?, ?it/s]") {
		t.Errorf("Unexpected bar width %d in %q", w, got)
	}
}
