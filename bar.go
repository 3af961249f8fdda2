package tqdm

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vbauerster/tqdm/decor"
)

// Bar is a handle to one progress record. Advance and Increment are
// meant to be called from one goroutine, the one doing the work. Steps
// are accumulated locally and flushed to the shared registry at most
// once per MinInterval, so hot loops stay cheap. Close, accessors and
// Configure may be called from any goroutine.
type Bar struct {
	p  *Progress
	id int

	nextFlush   time.Time // owned by the advancing goroutine
	pending     atomic.Int64
	minIters    atomic.Int64
	minInterval atomic.Int64

	closed  atomic.Bool
	once    sync.Once
	final   Snapshot
	cleanup runtime.Cleanup
}

// ID returns id of the bar. Ids are unique within container and
// increase in creation order.
func (b *Bar) ID() int {
	if b == nil {
		return 0
	}
	return b.id
}

// Increment is a shorthand for b.Advance(1).
func (b *Bar) Increment() {
	b.Advance(1)
}

// Advance adds n steps. Non-positive n and closed bar are ignored.
// Nil *Bar is a no-op, so wrappers can keep iterating when bar could
// not be created.
func (b *Bar) Advance(n int64) {
	if b == nil || n <= 0 || b.closed.Load() {
		return
	}
	if b.pending.Add(n) < b.minIters.Load() {
		return
	}
	now := time.Now()
	if now.Before(b.nextFlush) {
		return
	}
	b.p.reg.Update(b.id, b.pending.Swap(0), now)
	b.nextFlush = now.Add(time.Duration(b.minInterval.Load()))
	b.p.render(now)
}

// SetTotal changes total mid-run. Negative total makes bar unbounded.
func (b *Bar) SetTotal(total int64) {
	if b == nil || b.closed.Load() {
		return
	}
	if b.p.reg.SetTotal(b.id, total) {
		b.p.Refresh()
	}
}

// Configure applies options to the bar. If any option fails, none is
// applied and the error is returned.
func (b *Bar) Configure(options ...BarOption) error {
	if b == nil || b.closed.Load() {
		return ErrClosed
	}
	cfg, err := b.p.reg.configure(b.id, func(c *Config) error {
		return c.apply(options)
	})
	if err != nil {
		return err
	}
	b.setThrottle(cfg)
	return nil
}

// Close flushes pending steps and removes the bar from the container.
// Depending on ClearOnClose its final line is either left above the
// live bars or erased. Close is idempotent. Nil *Bar is a no-op.
func (b *Bar) Close() {
	if b == nil {
		return
	}
	b.once.Do(func() {
		b.closed.Store(true)
		b.cleanup.Stop()
		b.final, _ = b.p.closeBar(b.id, b.pending.Swap(0))
	})
}

// byteUnit switches bar without unit to decor.UnitKiB.
func (b *Bar) byteUnit() {
	if b == nil || b.closed.Load() {
		return
	}
	_, _ = b.p.reg.configure(b.id, func(c *Config) error {
		if c.Unit == decor.UnitNone {
			c.Unit = decor.UnitKiB
		}
		return nil
	})
}

func (b *Bar) setThrottle(cfg Config) {
	b.minIters.Store(cfg.MinIters)
	b.minInterval.Store(int64(cfg.MinInterval))
}

// Closed reports whether Close has been called.
func (b *Bar) Closed() bool {
	return b == nil || b.closed.Load()
}

// Current returns number of steps done, including ones not flushed yet.
func (b *Bar) Current() int64 {
	if s, ok := b.snapshot(); ok {
		return s.Current
	}
	return 0
}

// Total returns total steps, Unbounded if total is unknown.
func (b *Bar) Total() int64 {
	if s, ok := b.snapshot(); ok {
		return s.Total
	}
	return Unbounded
}

func (b *Bar) snapshot() (Snapshot, bool) {
	if b == nil {
		return Snapshot{}, false
	}
	if b.closed.Load() {
		b.once.Do(func() {}) // wait for Close to finish
		return b.final, true
	}
	s, ok := b.p.reg.Get(b.id)
	if ok {
		s.Current += b.pending.Load()
	}
	return s, ok
}
