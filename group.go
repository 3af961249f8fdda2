package tqdm

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Group runs tasks concurrently and counts finished ones on a shared
// bar. It is a thin layer over errgroup.Group.
type Group struct {
	eg  *errgroup.Group
	ctx context.Context
	mu  sync.Mutex
	bar *Bar
}

// NewGroup returns a new Group with a bar of total tasks, and derived
// context which is canceled when first task fails or Wait returns.
func NewGroup(ctx context.Context, p *Progress, total int64, options ...BarOption) (*Group, context.Context, error) {
	if p == nil {
		p = Default()
	}
	bar, err := p.AddBar(total, options...)
	if err != nil {
		return nil, ctx, err
	}
	eg, ctx := errgroup.WithContext(ctx)
	return &Group{eg: eg, ctx: ctx, bar: bar}, ctx, nil
}

// SetLimit limits number of tasks running at once, see
// errgroup.Group.SetLimit.
func (g *Group) SetLimit(n int) {
	g.eg.SetLimit(n)
}

// Go runs f in a new goroutine. The bar advances by one when f returns,
// whatever its result.
func (g *Group) Go(f func(ctx context.Context) error) {
	g.eg.Go(func() error {
		defer g.done()
		return f(g.ctx)
	})
}

func (g *Group) done() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bar.Increment()
}

// Wait waits for all tasks, closes the bar and returns first non-nil
// error, if any.
func (g *Group) Wait() error {
	err := g.eg.Wait()
	g.bar.Close()
	return err
}

// Bar returns the shared bar.
func (g *Group) Bar() *Bar {
	return g.bar
}
