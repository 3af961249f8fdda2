package tqdm

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vbauerster/tqdm/cwriter"
	"github.com/vbauerster/tqdm/internal"
)

// Progress is a container of bars sharing one output. All renders of a
// container are serialized, so concurrent frames never interleave.
// Progress is an io.Writer, its logger may write to the container
// itself.
type Progress struct {
	reg         *Registry
	cw          *cwriter.Writer
	logger      zerolog.Logger
	autoRefresh bool

	// mu serializes everything written to cw
	mu sync.Mutex

	wg       sync.WaitGroup
	done     chan struct{}
	shutdown sync.Once
	cancel   func()
}

// New creates new Progress container instance. It's not possible to
// reuse instance after Wait method has been called.
func New(options ...ContainerOption) *Progress {
	return NewWithContext(context.Background(), options...)
}

// NewWithContext creates new Progress container instance with provided
// context. Canceling the context stops periodic refresh and makes
// AddBar fail with ErrShutdown. Bars already added keep working.
func NewWithContext(ctx context.Context, options ...ContainerOption) *Progress {
	if ctx == nil {
		ctx = context.Background()
	}
	conf := pConf{
		output: os.Stderr,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(&conf)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	p := &Progress{
		reg:         NewRegistry(),
		cw:          cwriter.New(conf.output),
		logger:      conf.logger,
		autoRefresh: conf.autoRefresh,
		done:        make(chan struct{}),
		cancel:      cancel,
	}
	p.cw.SetFallbackSize(conf.width, 0)

	if conf.refreshRate > 0 || p.cw.IsTerminal() {
		go p.serve(ctx, conf.refreshRate)
	} else {
		go func() {
			select {
			case <-ctx.Done():
				p.stop()
			case <-p.done:
			}
		}()
	}
	p.logger.Debug().
		Bool("terminal", p.cw.IsTerminal()).
		Bool("auto_refresh", p.autoRefresh).
		Dur("refresh_rate", conf.refreshRate).
		Msg("progress started")
	return p
}

// AddBar creates a new bar and adds it to the container. Negative total
// creates unbounded bar. Option errors are returned before anything is
// added.
func (p *Progress) AddBar(total int64, options ...BarOption) (*Bar, error) {
	cfg := DefaultConfig()
	if err := cfg.apply(options); err != nil {
		return nil, err
	}
	select {
	case <-p.done:
		return nil, ErrShutdown
	default:
	}

	p.wg.Add(1)
	now := time.Now()
	rec := p.reg.add(total, cfg, now)
	bar := &Bar{p: p, id: rec.id}
	bar.setThrottle(cfg)
	bar.cleanup = runtime.AddCleanup(bar, abandon, barRef{p, rec.id})
	p.logger.Debug().Int("id", rec.id).Int64("total", rec.total).Str("label", cfg.Label).Msg("bar added")
	p.render(now)
	return bar, nil
}

type barRef struct {
	p  *Progress
	id int
}

// abandon closes record of a handle that became unreachable without
// Close being called.
func abandon(ref barRef) {
	ref.p.logger.Debug().Int("id", ref.id).Msg("closing abandoned bar")
	ref.p.closeBar(ref.id, 0)
}

// closeBar flushes pending steps, removes the record and either prints
// its final line above the live bars or erases it.
func (p *Progress) closeBar(id int, pending int64) (Snapshot, bool) {
	now := time.Now()
	if pending > 0 {
		p.reg.Update(id, pending, now)
	}
	s, ok := p.reg.Remove(id)
	if !ok {
		return s, false
	}
	defer p.wg.Done()

	err := p.finalize(s, now)
	if err != nil {
		p.logger.Debug().Err(err).Int("id", id).Msg("render on close")
	}
	p.logger.Debug().Int("id", id).Int64("current", s.Current).Msg("bar closed")
	return s, true
}

func (p *Progress) finalize(s Snapshot, now time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !s.Config.ClearOnClose {
		if p.rendering() {
			columns, _ := p.cw.Size()
			p.cw.CarriageReturn()
			p.cw.ClearLine()
			p.cw.WriteString(internal.Truncate(RenderLine(s, now, columns), columns))
		} else {
			p.cw.WriteString(RenderLine(s, now, p.fallbackColumns()))
		}
		p.cw.WriteByte('\n')
	}
	return p.renderLocked(now)
}

// Refresh re-renders all live bars.
func (p *Progress) Refresh() {
	p.render(time.Now())
}

func (p *Progress) render(now time.Time) {
	p.mu.Lock()
	err := p.renderLocked(now)
	p.mu.Unlock()
	if err != nil {
		p.logger.Debug().Err(err).Msg("render")
	}
}

func (p *Progress) rendering() bool {
	return p.autoRefresh || p.cw.IsTerminal()
}

func (p *Progress) fallbackColumns() int {
	columns, _ := p.cw.Size()
	return columns
}

// renderLocked draws all live bars starting at the anchor row and moves
// cursor back to the anchor. Must be called with p.mu held.
func (p *Progress) renderLocked(now time.Time) error {
	if !p.rendering() {
		return p.flushLocked()
	}
	snapshots := p.reg.Snapshot()
	columns, rows := p.cw.Size()
	capacity := max(rows-1, 1)

	visible, hidden := snapshots, 0
	if len(snapshots) > capacity {
		visible = snapshots[:capacity-1]
		hidden = len(snapshots) - len(visible)
	}

	p.cw.HideCursor()
	p.cw.CarriageReturn()
	for _, s := range visible {
		p.cw.WriteString(internal.FitWidth(RenderLine(s, now, columns), columns))
		p.cw.WriteByte('\n')
	}
	lines := len(visible)
	if hidden > 0 {
		p.cw.WriteString(internal.FitWidth(fmt.Sprintf("... (%d more hidden)", hidden), columns))
		p.cw.WriteByte('\n')
		lines++
	}
	p.cw.ClearDown()
	p.cw.CursorUp(lines)
	p.cw.ShowCursor()
	return p.flushLocked()
}

func (p *Progress) flushLocked() error {
	if err := p.cw.Flush(); err != nil {
		p.cw.Discard()
		return err
	}
	return nil
}

// Write prints b above the live bars and redraws them. It makes
// Progress usable as log output while bars are running. A missing
// trailing newline is added.
func (p *Progress) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rendering() {
		p.cw.CarriageReturn()
		p.cw.ClearDown()
	}
	p.cw.Write(b)
	if len(b) == 0 || b[len(b)-1] != '\n' {
		p.cw.WriteByte('\n')
	}
	if err := p.renderLocked(time.Now()); err != nil {
		return 0, err
	}
	return len(b), nil
}

// BarCount returns number of live bars.
func (p *Progress) BarCount() int {
	return p.reg.Len()
}

// Wait waits for all bars to be closed and stops the container. After
// this method has been called, there is no way to reuse Progress
// instance.
func (p *Progress) Wait() {
	p.wg.Wait()
	p.stop()
}

func (p *Progress) stop() {
	p.shutdown.Do(func() {
		close(p.done)
		p.cancel()
		p.mu.Lock()
		if p.cw.IsTerminal() {
			p.cw.ShowCursor()
		}
		err := p.flushLocked()
		p.mu.Unlock()
		if err != nil {
			p.logger.Debug().Err(err).Msg("flush on shutdown")
		}
		p.logger.Debug().Msg("progress stopped")
	})
}

// serve refreshes live bars on every tick and on terminal resize until
// ctx is done or the container is stopped.
func (p *Progress) serve(ctx context.Context, rr time.Duration) {
	var tick <-chan time.Time
	if rr > 0 {
		ticker := time.NewTicker(rr)
		defer ticker.Stop()
		tick = ticker.C
	}
	resize, stopResize := notifyResize()
	defer stopResize()
	for {
		select {
		case <-tick:
			if p.reg.Len() != 0 {
				p.Refresh()
			}
		case <-resize:
			p.logger.Debug().Msg("terminal resized")
			p.Refresh()
		case <-ctx.Done():
			p.stop()
			return
		case <-p.done:
			return
		}
	}
}

var (
	defaultOnce     sync.Once
	defaultProgress *Progress
)

// Default returns process wide container writing to os.Stderr. It is
// created on first use.
func Default() *Progress {
	defaultOnce.Do(func() {
		defaultProgress = New()
	})
	return defaultProgress
}

// AddBar adds a bar to Default container.
func AddBar(total int64, options ...BarOption) (*Bar, error) {
	return Default().AddBar(total, options...)
}

// Refresh re-renders bars of Default container.
func Refresh() {
	Default().Refresh()
}
