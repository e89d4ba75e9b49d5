// Package replay defines the Trace types and sentinel errors.
package replay

import (
	"errors"

	"github.com/katalvlaran/percolation/percolation"
)

// Sentinel errors for trace parsing.
var (
	// ErrEmptyTrace indicates the input contained no tokens at all.
	ErrEmptyTrace = errors.New("replay: empty trace")
	// ErrMalformedTrace indicates a bad token or an unpaired row.
	ErrMalformedTrace = errors.New("replay: malformed trace")
)

// Site is one recorded Open call, 1-indexed.
type Site struct {
	Row, Col int
}

// Trace is a grid side plus the ordered Open calls made on it.
type Trace struct {
	Size  int
	Sites []Site
}

// StepFunc observes the grid after each replayed Open. step counts from 0.
// Returning a non-nil error stops the replay.
type StepFunc func(step int, site Site, g *percolation.Grid) error

// Recorder wraps a Grid and appends every successful Open to a Trace.
type Recorder struct {
	grid  *percolation.Grid
	trace Trace
}
