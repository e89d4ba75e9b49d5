package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/stats"
)

func newStatsCmd(a *app) *cobra.Command {
	var (
		seed    int64
		workers int
	)
	cmd := &cobra.Command{
		Use:   "stats <n> <trials>",
		Short: "Estimate the percolation threshold of an n×n grid",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return usageErrorf("grid size %q is not an integer", args[0])
			}
			trials, err := strconv.Atoi(args[1])
			if err != nil {
				return usageErrorf("trial count %q is not an integer", args[1])
			}

			e, err := stats.New(n, trials,
				stats.WithSeed(seed),
				stats.WithWorkers(workers),
				stats.WithLogger(a.logger),
			)
			if errors.Is(err, stats.ErrInvalidArgument) {
				return withCode(codeUsage, err)
			}
			if err != nil {
				return err
			}

			printStats(cmd, e)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "base random seed (0 = fixed default)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "number of concurrent trials")

	return cmd
}

func printStats(cmd *cobra.Command, e *stats.Estimator) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mean                    = %.6f\n", e.Mean())
	fmt.Fprintf(out, "stddev                  = %.6f\n", e.Stddev())
	fmt.Fprintf(out, "95%% confidence interval = [%.6f, %.6f]\n", e.ConfidenceLo(), e.ConfidenceHi())
	fmt.Fprintf(out,
		"Percolation succeeded when %.2f%% sites were opened on average with %.3f%% margin of error at 95%% CI (%s trials, %d×%d grid)\n",
		e.Mean()*100, e.MarginOfError()*100, humanize.Comma(int64(e.Trials())), e.Size(), e.Size())
}
