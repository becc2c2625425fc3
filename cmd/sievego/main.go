// Package main implements the sievego command.
//
// sievego computes all prime numbers up to a given bound with a parallel
// Sieve of Eratosthenes and writes them to stdout in fixed-width
// columns. All diagnostics go to stderr; stdout carries primes only.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sievego"
	"github.com/hupe1980/sievego/internal/conv"
)

const (
	defaultLineWidth = 10
	defaultSeparator = "\t"
)

type config struct {
	quiet     bool
	showTime  bool
	workers   int
	lineWidth int
	separator string
	strategy  string
	help      bool
}

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *config) {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:           "sievego [flags] MAX",
		Short:         "Compute all primes up to MAX with a parallel Sieve of Eratosthenes",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: false,
		Example: `  # All primes up to one million, ten per line
  sievego 1000000

  # Benchmark the outer-parallel strategy on 8 workers
  sievego -q -t -n 8 --strategy outer 1000000

  # Five comma-separated primes per line
  sievego -l 5 -s ", " 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, cfg, stdout, args[0])
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&cfg.quiet, "quiet", "q", false,
		"suppress prime output (for benchmarking)")
	f.BoolVarP(&cfg.showTime, "time", "t", false,
		"print elapsed sieve time to stderr")
	f.IntVarP(&cfg.workers, "workers", "n", 0,
		"worker count for the sieve phase (default: all processor cores)")
	f.IntVarP(&cfg.lineWidth, "line", "l", defaultLineWidth,
		"primes printed per output line")
	f.StringVarP(&cfg.separator, "separator", "s", defaultSeparator,
		"separator between primes on the same line")
	f.StringVar(&cfg.strategy, "strategy", sievego.StrategyInner.String(),
		"parallelization strategy: inner or outer")

	// Replaces cobra's builtin help handling so -h exits non-zero like
	// any other run that produced no primes.
	f.BoolVarP(&cfg.help, "help", "h", false,
		"show usage")

	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	return cmd, cfg
}

func run(ctx context.Context, cmd *cobra.Command, cfg *config, stdout io.Writer, maxArg string) error {
	stderr := cmd.ErrOrStderr()

	bound, clamped, err := conv.ParseBound(maxArg)
	if err != nil {
		return err
	}
	if clamped {
		fmt.Fprintf(stderr, "%s is higher than we can handle, looking to a max of %d instead\n", maxArg, bound)
	}

	strategy, err := sievego.ParseStrategy(cfg.strategy)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("workers") && cfg.workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", cfg.workers)
	}
	if cmd.Flags().Changed("line") && cfg.lineWidth < 1 {
		return fmt.Errorf("line width must be at least 1, got %d", cfg.lineWidth)
	}

	// Arguments are valid; anything failing from here on is not a usage
	// problem.
	cmd.SilenceUsage = true

	opts := []sievego.Option{sievego.WithStrategy(strategy)}
	if cmd.Flags().Changed("workers") {
		opts = append(opts, sievego.WithWorkers(cfg.workers))
	}

	start := time.Now()
	table, err := sievego.Sieve(ctx, bound, opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if cfg.showTime {
		fmt.Fprintf(stderr, "sieved 2..%d in %s, %d primes found\n", bound, elapsed, table.Count())
	}

	if cfg.quiet {
		return nil
	}

	printer := sievego.NewPrinter(func(o *sievego.PrinterOptions) {
		o.LineWidth = cfg.lineWidth
		o.Separator = cfg.separator
	})
	return printer.Print(stdout, table)
}

func main() {
	cmd, cfg := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil || cfg.help {
		os.Exit(1)
	}
}
