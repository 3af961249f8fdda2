package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vbauerster/tqdm"
	"github.com/vbauerster/tqdm/internal/config"
)

func newDemoCmd(opts *options) *cobra.Command {
	var (
		bars  int
		steps int64
		delay time.Duration
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run concurrent demo bars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if bars < 1 || steps < 0 {
				return errors.New("demo: --bars must be > 0 and --steps >= 0")
			}
			cfg, err := config.Load(opts.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			cmd.SetContext(ctx)
			return runDemo(cmd, cfg, opts.verbose, bars, steps, delay)
		},
	}
	f := cmd.Flags()
	f.IntVar(&bars, "bars", 4, "number of concurrent bars")
	f.Int64Var(&steps, "steps", 100, "steps of every bar")
	f.DurationVar(&delay, "delay", 20*time.Millisecond, "mean delay between steps")
	return cmd
}

func runDemo(cmd *cobra.Command, cfg config.Config, verbose bool, bars int, steps int64, delay time.Duration) error {
	barOptions, err := cfg.BarOptions()
	if err != nil {
		return err
	}
	p, logger := newProgress(cmd, cfg, verbose)
	delay = max(delay, 0)
	desc := cfg.Bar.Desc
	if desc == "" {
		desc = "bar"
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	for i := range bars {
		bar, err := p.AddBar(steps, append(barOptions, tqdm.BarLabel(fmt.Sprintf("%s#%d", desc, i)))...)
		if err != nil {
			_ = g.Wait()
			p.Wait()
			return err
		}
		g.Go(func() error {
			defer bar.Close()
			rng := rand.New(rand.NewPCG(uint64(i), uint64(steps)))
			for range steps {
				d := time.Duration(rng.Int64N(int64(2*delay) + 1))
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(d):
				}
				bar.Increment()
			}
			logger.Info().Int("bar", i).Msg("done")
			return nil
		})
	}
	err = g.Wait()
	p.Wait()
	if errors.Is(err, context.Canceled) {
		logger.Warn().Msg("interrupted")
		return nil
	}
	return err
}
