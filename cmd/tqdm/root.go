package main

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vbauerster/tqdm"
	"github.com/vbauerster/tqdm/internal/config"
)

type options struct {
	cfgFile string
	verbose bool
}

// newRootCmd creates the root command, which copies stdin to stdout
// and shows progress on stderr.
func newRootCmd() *cobra.Command {
	opts := new(options)
	cmd := &cobra.Command{
		Use:   "tqdm",
		Short: "Show progress of a pipe",
		Long: `tqdm copies standard input to standard output unchanged and shows
a progress bar on standard error, counting lines or bytes. With known
total the bar shows percentage and ETA, otherwise count and rate.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipe(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	pf.String("desc", "", "label printed in front of the bar")
	pf.String("style", tqdm.KindBlock.String(), "bar style name or custom glyphs, empty to full")
	pf.Int("width", 0, "fixed line width, 0 follows terminal")
	pf.Float64("smoothing", 0.3, "rate smoothing factor in (0,1], 1 disables smoothing")
	pf.Float64("ewma-age", 0, "use ewma moving average of given age instead of smoothing")
	pf.Bool("clear", false, "erase the bar when done")
	pf.Int64("miniters", tqdm.DefaultMinIters, "minimum steps between redraws")
	pf.Duration("mininterval", tqdm.DefaultMinInterval, "minimum time between redraws")
	pf.Duration("refresh-rate", 200*time.Millisecond, "periodic redraw interval, 0 disables")
	pf.String("log-level", zerolog.LevelInfoValue, "log level")

	f := cmd.Flags()
	f.Int64("total", tqdm.Unbounded, "expected number of lines or bytes, negative if unknown")
	f.Bool("bytes", false, "count bytes instead of lines")
	f.String("unit", "", "counters unit: kib or kb, bytes mode defaults to kib")

	cmd.AddCommand(
		newDemoCmd(opts),
		newStylesCmd(),
		newVersionCmd(),
	)
	return cmd
}

func runPipe(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	barOptions, err := cfg.BarOptions()
	if err != nil {
		return err
	}
	p, logger := newProgress(cmd, cfg, opts.verbose)
	bar, err := p.AddBar(cfg.Bar.Total, barOptions...)
	if err != nil {
		p.Wait()
		return err
	}

	var n int64
	if cfg.Bar.Bytes {
		// hide io.WriterTo of *os.File, it would copy everything in
		// one call and the bar would jump from 0 to done
		src := struct{ io.Reader }{cmd.InOrStdin()}
		n, err = io.Copy(cmd.OutOrStdout(), bar.ProxyReader(src))
	} else {
		n, err = copyLines(cmd.OutOrStdout(), cmd.InOrStdin(), bar)
	}
	bar.Close()
	p.Wait()
	if err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	logger.Debug().Int64("count", n).Bool("bytes", cfg.Bar.Bytes).Msg("pipe done")
	return nil
}

// copyLines copies src to dst advancing bar by one per line. Last line
// counts even without trailing newline.
func copyLines(dst io.Writer, src io.Reader, bar *tqdm.Bar) (int64, error) {
	r := bufio.NewReaderSize(src, 64<<10)
	w := bufio.NewWriterSize(dst, 64<<10)
	var lines int64
	var partial bool
	for {
		chunk, err := r.ReadSlice('\n')
		if len(chunk) != 0 {
			if _, werr := w.Write(chunk); werr != nil {
				return lines, werr
			}
			partial = chunk[len(chunk)-1] != '\n'
			if !partial {
				lines++
				bar.Increment()
			}
		}
		switch err {
		case nil, bufio.ErrBufferFull:
			if r.Buffered() == 0 {
				if err := w.Flush(); err != nil {
					return lines, err
				}
			}
		case io.EOF:
			if partial {
				lines++
				bar.Increment()
			}
			return lines, w.Flush()
		default:
			_ = w.Flush()
			return lines, err
		}
	}
}

// newProgress builds a container on stderr and a console logger, which
// writes through the container so log lines appear above the bars.
func newProgress(cmd *cobra.Command, cfg config.Config, verbose bool) (*tqdm.Progress, zerolog.Logger) {
	level := cfg.Log.ParsedLevel()
	if verbose {
		level = zerolog.DebugLevel
	}
	out := &switchWriter{w: io.Discard}
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}).Level(level).With().Timestamp().Logger()

	options := append(cfg.ContainerOptions(),
		tqdm.WithOutput(cmd.ErrOrStderr()),
		tqdm.WithLogger(logger),
	)
	p := tqdm.NewWithContext(cmd.Context(), options...)
	out.set(p)
	return p, logger
}

// switchWriter lets logger be created before its destination.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) set(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
