// Package stats estimates the percolation threshold of an n×n grid by
// Monte-Carlo simulation.
//
// What:
//
//   - A trial builds a fresh percolation.Grid, draws (row, col) uniformly
//     from [1, n] with replacement and opens it until the grid percolates.
//     The trial's sample is NumberOfOpenSites() / n².
//   - Estimator runs T trials eagerly inside New and is read-only afterwards.
//   - Mean, Stddev (sample, Bessel-corrected) and the 95% normal-approximation
//     interval mean ± 1.96·stddev/√T summarise the samples.
//
// Randomness:
//
//   - No global source is used. Options.Seed selects a deterministic stream
//     (seed == 0 maps to a fixed default), and WithRand injects a caller-owned
//     *rand.Rand.
//   - Trial i always draws from its own stream derived from the base seed and
//     i, so the samples do not depend on Options.Workers.
//   - The one exception is WithRand with a single worker: every trial then
//     shares the injected stream in order.
//
// Concurrency:
//
//   - Options.Workers > 1 runs trials on a bounded errgroup. Sample i is
//     stored at index i, so the merge is deterministic.
//   - A finished Estimator is safe for concurrent readers.
//
// Errors:
//
//   - ErrInvalidArgument: n <= 0 or trials <= 0. Reported before any work.
//
// Complexity:
//
//   - One trial: O(n² log n) expected; New: O(T · n² log n).
package stats
