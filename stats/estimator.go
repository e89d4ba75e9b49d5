package stats

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolation/percolation"
)

// New runs trials independent percolation experiments on n×n grids and
// returns the finished Estimator.
// Returns ErrInvalidArgument, before any simulation, if n <= 0, n² overflows
// int, or trials <= 0.
//
// Steps:
//  1. Validate arguments and resolve Options (DefaultOptions + opts).
//  2. Run every trial, sequentially or on a bounded errgroup.
//  3. Compute mean and sample standard deviation once; the Estimator is
//     read-only afterwards.
func New(n, trials int, opts ...Option) (*Estimator, error) {
	if !validSide(n) || trials <= 0 {
		return nil, fmt.Errorf("stats: New(n=%d, trials=%d): %w", n, trials, ErrInvalidArgument)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	thresholds := make([]float64, trials)
	var err error
	if o.Rand != nil && o.Workers == 1 {
		err = runShared(n, thresholds, o.Rand, logger)
	} else {
		base := o.Seed
		if base == 0 {
			base = defaultSeed
		}
		if o.Rand != nil {
			base = o.Rand.Int63()
		}
		err = runDerived(n, thresholds, base, o.Workers, logger)
	}
	if err != nil {
		return nil, err
	}

	e := &Estimator{n: n, thresholds: thresholds}
	e.mean = mean(thresholds)
	e.stddev = sampleStddev(thresholds, e.mean)
	logger.Info("percolation threshold estimated",
		slog.Int("n", n),
		slog.Int("trials", trials),
		slog.Int("workers", o.Workers),
		slog.Float64("mean", e.mean),
		slog.Float64("stddev", e.stddev),
	)

	return e, nil
}

// Trial runs one experiment on a fresh n×n grid: it opens uniformly drawn
// sites (with replacement) until the grid percolates and returns the
// fraction of open sites at that moment. A nil rng uses the default seed.
// Returns ErrInvalidArgument if n <= 0 or n² overflows int.
func Trial(n int, rng *rand.Rand) (float64, error) {
	if !validSide(n) {
		return 0, fmt.Errorf("stats: Trial(n=%d): %w", n, ErrInvalidArgument)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	g, err := percolation.New(n)
	if err != nil {
		return 0, err
	}
	for !g.Percolates() {
		if err := g.Open(1+rng.Intn(n), 1+rng.Intn(n)); err != nil {
			return 0, err
		}
	}

	return float64(g.NumberOfOpenSites()) / (float64(n) * float64(n)), nil
}

// validSide reports whether an n×n grid can be indexed with int.
func validSide(n int) bool {
	return n > 0 && n <= math.MaxInt/n
}

// runShared draws every trial from one stream, in trial order.
func runShared(n int, out []float64, rng *rand.Rand, logger *slog.Logger) error {
	for i := range out {
		t, err := Trial(n, rng)
		if err != nil {
			return err
		}
		out[i] = t
		logTrial(logger, i, t)
	}

	return nil
}

// runDerived gives trial i its own stream derived from base and stores the
// sample at out[i], so the result is the same for any worker count.
func runDerived(n int, out []float64, base int64, workers int, logger *slog.Logger) error {
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range out {
		g.Go(func() error {
			t, err := Trial(n, trialRNG(base, i))
			if err != nil {
				return err
			}
			out[i] = t
			logTrial(logger, i, t)
			return nil
		})
	}

	return g.Wait()
}

func logTrial(logger *slog.Logger, i int, threshold float64) {
	logger.Debug("trial complete", slog.Int("trial", i), slog.Float64("threshold", threshold))
}

// Mean returns the arithmetic mean of the threshold samples.
func (e *Estimator) Mean() float64 {
	return e.mean
}

// Stddev returns the sample standard deviation (denominator T-1).
// It is exactly 0 when only one trial was run.
func (e *Estimator) Stddev() float64 {
	return e.stddev
}

// MarginOfError returns the half-width of the 95% confidence interval,
// 1.96·stddev/√T.
func (e *Estimator) MarginOfError() float64 {
	return Z95 * e.stddev / math.Sqrt(float64(len(e.thresholds)))
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (e *Estimator) ConfidenceLo() float64 {
	return e.mean - e.MarginOfError()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (e *Estimator) ConfidenceHi() float64 {
	return e.mean + e.MarginOfError()
}

// Thresholds returns a copy of the samples in trial order.
func (e *Estimator) Thresholds() []float64 {
	return append([]float64(nil), e.thresholds...)
}

// Trials returns the number of trials T.
func (e *Estimator) Trials() int {
	return len(e.thresholds)
}

// Size returns the grid side n used by every trial.
func (e *Estimator) Size() int {
	return e.n
}

// mean returns Σx / len(x); x is never empty here.
func mean(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

// sampleStddev returns √(Σ(x-m)² / (len(x)-1)), or 0 for a single sample.
func sampleStddev(x []float64, m float64) float64 {
	if len(x) == 1 {
		return 0
	}
	var ss float64
	for _, v := range x {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(x)-1))
}
