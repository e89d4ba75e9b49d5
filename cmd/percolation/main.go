// Command percolation estimates percolation thresholds and replays recorded
// open traces.
//
// Usage:
//
//	percolation stats <n> <trials> [--seed S] [--workers W]
//	percolation replay <file|-> [--ascii] [--verify]
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// app carries state shared by all subcommands.
type app struct {
	logLevel string
	logger   *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "percolation:", err)
		os.Exit(exitCode(err))
	}
}

// newRootCmd wires the command tree. Output goes to cmd.OutOrStdout so tests
// can capture it.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:     "percolation",
		Short:   "Percolation threshold estimation and open-trace replay",
		Version: version,
		// Errors are printed once by main with an exit code.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(strings.ToUpper(a.logLevel))); err != nil {
				return usageErrorf("invalid --log-level %q", a.logLevel)
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withCode(codeUsage, err)
	})
	root.PersistentFlags().StringVarP(&a.logLevel, "log-level", "l", "warn", "log level (debug|info|warn|error)")

	root.AddCommand(newStatsCmd(a), newReplayCmd(a))

	return root
}

// exactArgs is cobra.ExactArgs with the usage exit code attached.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return withCode(codeUsage, cobra.ExactArgs(n)(cmd, args))
	}
}
