package tqdm

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vbauerster/tqdm/decor"
)

type record struct {
	mu         sync.Mutex
	id         int
	createdAt  time.Time
	lastUpdate time.Time
	current    int64
	total      int64
	rate       *decor.RateEstimator
	config     Config
}

// snapshot must be called with r.mu held.
func (r *record) snapshot() Snapshot {
	rate, known := r.rate.Rate()
	return Snapshot{
		ID:         r.id,
		CreatedAt:  r.createdAt,
		LastUpdate: r.lastUpdate,
		Current:    r.current,
		Total:      r.total,
		Rate:       rate,
		RateKnown:  known,
		Config:     r.config,
	}
}

// Registry keeps live bar records ordered by id. Ids are assigned in
// creation order and never reused. Registry is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	lastID  int
	records []*record
}

// NewRegistry creates empty Registry.
func NewRegistry() *Registry {
	return new(Registry)
}

func (r *Registry) add(total int64, cfg Config, now time.Time) *record {
	if total < 0 {
		total = Unbounded
	}
	rec := &record{
		createdAt: now,
		total:     total,
		rate:      decor.NewRateEstimator(cfg.movingAverage()),
		config:    cfg,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	rec.id = r.lastID
	// ids grow monotonically, so appending keeps records sorted
	r.records = append(r.records, rec)
	return rec
}

// find must be called with r.mu held.
func (r *Registry) find(id int) (int, *record) {
	i, ok := slices.BinarySearchFunc(r.records, id, func(rec *record, id int) int {
		return rec.id - id
	})
	if !ok {
		return i, nil
	}
	return i, r.records[i]
}

func (r *Registry) lookup(id int) *record {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, rec := r.find(id)
	return rec
}

// Update adds delta to bar's current count and feeds rate estimator
// with the time passed since previous update. Unknown id or negative
// delta is a no-op, reported by false.
func (r *Registry) Update(id int, delta int64, now time.Time) bool {
	if delta < 0 {
		return false
	}
	rec := r.lookup(id)
	if rec == nil {
		return false
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.current += delta
	if !rec.lastUpdate.IsZero() {
		rec.rate.Observe(now.Sub(rec.lastUpdate), delta)
	}
	rec.lastUpdate = now
	return true
}

// SetTotal replaces bar's total. Negative total makes bar unbounded.
func (r *Registry) SetTotal(id int, total int64) bool {
	rec := r.lookup(id)
	if rec == nil {
		return false
	}
	if total < 0 {
		total = Unbounded
	}
	rec.mu.Lock()
	rec.total = total
	rec.mu.Unlock()
	return true
}

// configure applies fn to a copy of bar's config and commits the copy
// only if fn succeeds. Rate estimator is rebuilt when smoothing changes.
func (r *Registry) configure(id int, fn func(*Config) error) (Config, error) {
	rec := r.lookup(id)
	if rec == nil {
		return Config{}, fmt.Errorf("bar %d: %w", id, ErrClosed)
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	cfg := rec.config
	if err := fn(&cfg); err != nil {
		return rec.config, err
	}
	if cfg.Smoothing != rec.config.Smoothing || cfg.EwmaAge != rec.config.EwmaAge {
		rec.rate.Reset(cfg.movingAverage())
	}
	rec.config = cfg
	return cfg, nil
}

// Get returns snapshot of a live bar.
func (r *Registry) Get(id int) (Snapshot, bool) {
	rec := r.lookup(id)
	if rec == nil {
		return Snapshot{}, false
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.snapshot(), true
}

// Remove deletes bar's record and returns its final snapshot. The
// second result is false if id is not live, so only one of concurrent
// removals wins.
func (r *Registry) Remove(id int) (Snapshot, bool) {
	r.mu.Lock()
	i, rec := r.find(id)
	if rec != nil {
		r.records = slices.Delete(r.records, i, i+1)
	}
	r.mu.Unlock()
	if rec == nil {
		return Snapshot{}, false
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.snapshot(), true
}

// Snapshot returns snapshots of all live bars in ascending id order.
func (r *Registry) Snapshot() []Snapshot {
	r.mu.Lock()
	records := slices.Clone(r.records)
	r.mu.Unlock()
	snapshots := make([]Snapshot, len(records))
	for i, rec := range records {
		rec.mu.Lock()
		snapshots[i] = rec.snapshot()
		rec.mu.Unlock()
	}
	return snapshots
}

// Len returns number of live bars.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
