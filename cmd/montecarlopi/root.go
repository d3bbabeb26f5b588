package main

import (
	"os"
	"runtime/pprof"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/montecarlopi/internal/config"
	"github.com/lukaszgryglicki/montecarlopi/internal/montecarlopi"
)

var version = "dev"

// options are the resolved settings for one invocation.
type options struct {
	cfg         config.Config
	interactive bool // force the spinner regardless of the terminal check
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cfg, cfgErr := config.Load()
	opts.cfg = cfg

	root := &cobra.Command{
		Use:           "montecarlopi",
		Short:         "Estimate pi by Monte Carlo sampling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			montecarlopi.Debug = opts.cfg.Debug
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&opts.cfg.Debug, "debug", cfg.Debug, "log sampler internals to stderr")

	root.AddCommand(newEstimateCmd(opts), newPointsCmd(opts), newVersionCmd())
	return root
}

// isTerminal reports whether stream (stdin, stdout or stderr) is an
// interactive terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// startProfile begins CPU profiling into path; the returned func stops it.
func startProfile(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}, nil
}
