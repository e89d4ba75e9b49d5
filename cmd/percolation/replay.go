package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/replay"
)

func newReplayCmd(a *app) *cobra.Command {
	var ascii, verify bool
	cmd := &cobra.Command{
		Use:   "replay <file|->",
		Short: "Replay a recorded open trace and report the final state",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeFn, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			tr, err := replay.Parse(in)
			if err != nil {
				return withCode(codeBadData, err)
			}
			a.logger.Info("trace loaded", slog.Int("n", tr.Size), slog.Int("opens", len(tr.Sites)))

			g, err := tr.Replay(func(step int, s replay.Site, g *percolation.Grid) error {
				a.logger.Debug("site opened",
					slog.Int("step", step), slog.Int("row", s.Row), slog.Int("col", s.Col),
					slog.Bool("percolates", g.Percolates()))
				return nil
			})
			if err != nil {
				return withCode(codeBadData, err)
			}

			out := cmd.OutOrStdout()
			if ascii {
				if err := render(out, g); err != nil {
					return err
				}
			}
			fmt.Fprintln(out, statusLine(g))
			if g.Size() > 0 && !g.Percolates() {
				oracle, err := gridgraph.FromSites(g.OpenMask())
				if err != nil {
					return err
				}
				_, need := oracle.MinOpenings()
				fmt.Fprintf(out, "%s more %s needed to percolate\n", humanize.Comma(int64(need)), plural(need, "site", "sites"))
			}
			if verify {
				if err := verifyGrid(g); err != nil {
					return withCode(codeInternal, err)
				}
				fmt.Fprintln(out, "verified against breadth-first search")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&ascii, "ascii", false, "print the grid (# closed, . open, ~ full)")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check full sites with a breadth-first search")

	return cmd
}

// openInput opens path, or stdin for "-".
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, withCode(codeMissingFile, err)
	}
	return f, func() { _ = f.Close() }, nil
}

// statusLine mirrors the visualizer status bar: "<N> sites opened, percolates".
func statusLine(g *percolation.Grid) string {
	open := g.NumberOfOpenSites()
	state := "does not percolate"
	if g.Percolates() {
		state = "percolates"
	}
	return fmt.Sprintf("%s %s opened, %s", humanize.Comma(int64(open)), plural(open, "site", "sites"), state)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// render prints one line per row: '#' closed, '.' open, '~' full.
func render(w io.Writer, g *percolation.Grid) error {
	n := g.Size()
	line := make([]byte, n+1)
	line[n] = '\n'
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			s, err := g.Status(row, col)
			if err != nil {
				return err
			}
			switch {
			case s.Has(percolation.ReachesTop):
				line[col-1] = '~'
			case s != percolation.Closed:
				line[col-1] = '.'
			default:
				line[col-1] = '#'
			}
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

var errMismatch = errors.New("grid disagrees with breadth-first search")

// verifyGrid recomputes full sites and percolation from scratch.
func verifyGrid(g *percolation.Grid) error {
	n := g.Size()
	if n == 0 {
		return nil
	}
	oracle, err := gridgraph.FromSites(g.OpenMask())
	if err != nil {
		return err
	}
	if oracle.Percolates() != g.Percolates() {
		return fmt.Errorf("percolates=%t, search=%t: %w", g.Percolates(), oracle.Percolates(), errMismatch)
	}
	want := oracle.FullSites()
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			full, err := g.IsFull(row, col)
			if err != nil {
				return err
			}
			if full != want[(row-1)*n+col-1] {
				return fmt.Errorf("site (%d,%d) full=%t: %w", row, col, full, errMismatch)
			}
		}
	}
	return nil
}
