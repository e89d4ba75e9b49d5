// Package percolation is the root of a small toolkit for site percolation on
// n×n grids: when does a randomly opened grid first let fluid through from
// the top row to the bottom row?
//
// 🚀 What is in the box?
//
//	• Weighted quick-union with O(log n) Find, no path compression
//	• A percolation grid that tracks "reaches top" and "reaches bottom" as
//	  bit flags on union-find roots, so full-site queries never suffer backwash
//	• A Monte-Carlo threshold estimator with reproducible seeds and an
//	  optional bounded worker pool
//	• Open-trace files: record, parse and replay sequences of opens
//	• A breadth-first reference model of the same grid, used for verification
//
// Everything is organized under these subpackages:
//
//	unionfind/   - DisjointSet: Find, Union, Connected, Count, Size
//	percolation/ - Grid: Open, IsOpen, IsFull, Percolates, Status
//	stats/       - Estimator: Mean, Stddev, ConfidenceLo, ConfidenceHi
//	replay/      - Trace, Parse, Recorder
//	gridgraph/   - open-mask graph: components, full sites, min openings
//	cmd/percolation - the stats and replay command line
//
// Quick ASCII example (3×3, '#' closed, '.' open, '~' full):
//
//	##~
//	##~
//	.#~
//
// The right column connects top to bottom; the lower-left site is open and
// touches the bottom row but is not full.
//
//	go install github.com/katalvlaran/percolation/cmd/percolation@latest
package percolation
