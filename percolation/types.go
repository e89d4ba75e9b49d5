// Package percolation defines the site Status bitmask, the Grid type and
// sentinel errors.
package percolation

import (
	"errors"
	"strings"

	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidSize indicates a negative grid side, or one whose site count
	// n² overflows int.
	ErrInvalidSize = errors.New("percolation: grid size must be non-negative and n² must fit in an int")
	// ErrInvalidCoordinate indicates row or col lies outside [1, n].
	ErrInvalidCoordinate = errors.New("percolation: invalid coordinate")
)

// Status is the per-site bitmask. A non-zero value means the site is open.
// On a component root it aggregates the boundary reachability of the whole
// component.
type Status uint8

const (
	// Closed is the initial state of every site.
	Closed Status = 0
	// Open marks a site opened by Grid.Open.
	Open Status = 1 << (iota - 1)
	// ReachesTop marks a component that touches row 1.
	ReachesTop
	// ReachesBottom marks a component that touches row n.
	ReachesBottom
)

// Percolating is the aggregate of a component spanning both boundaries.
const Percolating = ReachesTop | ReachesBottom

// Has reports whether every bit of flag is set in s.
func (s Status) Has(flag Status) bool {
	return s&flag == flag
}

// String renders the set bits, e.g. "open|top|bottom".
func (s Status) String() string {
	if s == Closed {
		return "closed"
	}
	var parts []string
	if s.Has(Open) {
		parts = append(parts, "open")
	}
	if s.Has(ReachesTop) {
		parts = append(parts, "top")
	}
	if s.Has(ReachesBottom) {
		parts = append(parts, "bottom")
	}

	return strings.Join(parts, "|")
}

// Grid is an n×n percolation system.
// side and status are fixed at construction; openCount only grows and
// percolates never goes back to false.
type Grid struct {
	side       int
	openCount  int
	percolates bool
	status     []Status // row-major, one entry per site
	uf         *unionfind.DisjointSet
}

// neighbourOffsets lists orthogonal neighbours as (dRow, dCol):
// left, right, up, down.
var neighbourOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
