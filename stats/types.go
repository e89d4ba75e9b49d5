// Package stats defines options and sentinel errors for threshold estimation.
package stats

import (
	"errors"
	"log/slog"
	"math/rand"
)

// ErrInvalidArgument indicates a non-positive grid size or trial count, or a
// grid side whose site count overflows int.
var ErrInvalidArgument = errors.New("stats: grid size and trial count must both be positive")

// Z95 is the two-sided 95% quantile of the standard normal distribution.
const Z95 = 1.96

// Options configures an Estimator.
//
// Fields:
//   - Seed: base seed for trial streams; 0 selects defaultSeed.
//   - Workers: number of concurrent trials; values below 1 mean 1.
//   - Rand: optional caller-owned source. With one worker it is shared by
//     all trials in order; with more workers it only seeds the trial streams.
//   - Logger: receives a Debug record per trial and an Info summary.
//     nil discards everything.
type Options struct {
	Seed    int64
	Workers int
	Rand    *rand.Rand
	Logger  *slog.Logger
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithSeed returns an Option that sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers returns an Option that sets the number of concurrent trials.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithRand returns an Option that injects a random source.
// The Estimator takes ownership of r for the duration of New.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithLogger returns an Option that sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options for a sequential, reproducible run:
//
//	– Seed    = 0 (defaultSeed)
//	– Workers = 1
//	– Rand    = nil
//	– Logger  = nil (silent)
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Workers: 1,
	}
}

// Estimator holds the per-trial threshold samples of a finished run and
// their summary statistics.
type Estimator struct {
	n          int
	thresholds []float64
	mean       float64
	stddev     float64
}
