package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/montecarlopi/internal/montecarlopi"
)

func newPointsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Print raw inside and total counts of a sequential run",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := montecarlopi.GeneratePoints(opts.cfg.Points)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", c.Inside, c.Total)
			return err
		},
	}
	cmd.Flags().Int64VarP(&opts.cfg.Points, "points", "n", opts.cfg.Points, "number of random points")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
