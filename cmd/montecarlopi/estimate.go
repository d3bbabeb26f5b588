package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/montecarlopi/internal/montecarlopi"
	"github.com/lukaszgryglicki/montecarlopi/internal/ux"
)

func newEstimateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print a pi estimate with 6 decimal places",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.Int64VarP(&opts.cfg.Points, "points", "n", opts.cfg.Points, "number of random points")
	f.Int32VarP(&opts.cfg.Threads, "threads", "t", opts.cfg.Threads, "worker goroutines (0 = one per CPU)")
	f.BoolVarP(&opts.cfg.Sequential, "sequential", "s", opts.cfg.Sequential, "sample on a single goroutine")
	f.StringVar(&opts.cfg.MetricsFile, "metrics-file", opts.cfg.MetricsFile, "write Prometheus metrics to this file")
	f.StringVar(&opts.cfg.Profile, "profile", opts.cfg.Profile, "write a CPU profile to this file")
	f.BoolVar(&opts.interactive, "spinner", false, "show the progress spinner even when not on a terminal")
	return cmd
}

func runEstimate(cmd *cobra.Command, opts *options) error {
	cfg := opts.cfg
	// a zero estimate would look like a real (bad) result
	if cfg.Points <= 0 {
		return fmt.Errorf("--points must be positive, got %d", cfg.Points)
	}

	stop, err := startProfile(cfg.Profile)
	if err != nil {
		return fmt.Errorf("start profile: %w", err)
	}
	defer stop()

	sampler := &montecarlopi.Sampler{}
	if cfg.MetricsFile != "" {
		sampler.Metrics = montecarlopi.NewMetrics()
	}

	req := montecarlopi.SampleRequest{Points: cfg.Points, Threads: cfg.Threads, Sequential: cfg.Sequential}
	est := sampler.Go(req)
	out := cmd.OutOrStdout()

	var value float64
	if opts.interactive || isTerminal(out) {
		var in io.Reader
		if isTerminal(cmd.InOrStdin()) {
			in = cmd.InOrStdin()
		}
		value, err = ux.RunEstimate(est, in, cmd.ErrOrStderr())
	} else {
		value, err = est.Wait(context.Background())
	}
	if err != nil {
		return err
	}

	if isTerminal(out) {
		fmt.Fprintln(out, ux.RenderResult(req, value, est.Elapsed()))
	} else {
		fmt.Fprintln(out, ux.FormatEstimate(value))
	}
	montecarlopi.DebugLog("estimate", "value", value, "elapsed", est.Elapsed().Round(time.Microsecond))

	if sampler.Metrics != nil {
		if err := sampler.Metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}
	return nil
}
