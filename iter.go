package tqdm

import (
	"iter"
	"sync"
)

// newIterBar adds a bar for one of sequence wrappers. Configuration
// error is logged and nil bar is returned, iteration goes on without
// progress then.
func (p *Progress) newIterBar(total int64, options []BarOption) *Bar {
	if p == nil {
		p = Default()
	}
	bar, err := p.AddBar(total, options...)
	if err != nil {
		p.logger.Warn().Err(err).Msg("sequence runs without a bar")
		return nil
	}
	return bar
}

// Seq wraps seq so that every yielded value advances a new bar by one.
// The bar is created when iteration starts and closed when it ends,
// whether seq is exhausted, the loop breaks or its body panics. Use
// Unbounded total if length of seq is unknown. Nil p means Default().
func Seq[V any](p *Progress, seq iter.Seq[V], total int64, options ...BarOption) iter.Seq[V] {
	return func(yield func(V) bool) {
		bar := p.newIterBar(total, options)
		defer bar.Close()
		for v := range seq {
			bar.Increment()
			if !yield(v) {
				return
			}
		}
	}
}

// Seq2 is Seq for iter.Seq2.
func Seq2[K, V any](p *Progress, seq iter.Seq2[K, V], total int64, options ...BarOption) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		bar := p.newIterBar(total, options)
		defer bar.Close()
		for k, v := range seq {
			bar.Increment()
			if !yield(k, v) {
				return
			}
		}
	}
}

// Slice ranges over index and value of s, with total of len(s).
func Slice[S ~[]E, E any](p *Progress, s S, options ...BarOption) iter.Seq2[int, E] {
	return Seq2(p, func(yield func(int, E) bool) {
		for i, v := range s {
			if !yield(i, v) {
				return
			}
		}
	}, int64(len(s)), options...)
}

// Iterator is a pull style wrapper, see Pull.
type Iterator[V any] struct {
	next func() (V, bool)
	stop func()
	bar  *Bar
	once sync.Once
}

// Pull converts seq into a pull style iterator backed by a new bar.
// Iterator stops itself when seq is exhausted, otherwise caller must
// call Stop.
func Pull[V any](p *Progress, seq iter.Seq[V], total int64, options ...BarOption) *Iterator[V] {
	next, stop := iter.Pull(seq)
	return &Iterator[V]{
		next: next,
		stop: stop,
		bar:  p.newIterBar(total, options),
	}
}

// Next returns next value of the sequence and advances the bar. The
// second result is false when the sequence is over.
func (it *Iterator[V]) Next() (V, bool) {
	v, ok := it.next()
	if !ok {
		it.Stop()
		return v, false
	}
	it.bar.Increment()
	return v, true
}

// Stop ends iteration and closes the bar. It is safe to call Stop more
// than once.
func (it *Iterator[V]) Stop() {
	it.once.Do(func() {
		it.stop()
		it.bar.Close()
	})
}

// Bar returns underlying bar, nil if it could not be created.
func (it *Iterator[V]) Bar() *Bar {
	return it.bar
}
