// Package gridgraph defines core types and sentinel errors
// for the gridgraph package of github.com/katalvlaran/percolation.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input mask has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// GridGraph treats a 2D open/closed mask as a graph with orthogonal
// (N, E, S, W) adjacency. It is immutable once built.
// Width and Height define dimensions; Sites[y][x] is true for an open site.
type GridGraph struct {
	Width, Height int
	Sites         [][]bool
	offsets       [][2]int
}
