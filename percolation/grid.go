package percolation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/percolation/unionfind"
)

// New constructs an n×n Grid with every site closed.
// n == 0 yields an empty grid on which every coordinate is invalid.
// Returns ErrInvalidSize if n < 0 or n² does not fit in an int.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n < 0 || (n > 0 && n > math.MaxInt/n) {
		return nil, fmt.Errorf("percolation: New(%d): %w", n, ErrInvalidSize)
	}
	uf, err := unionfind.New(n * n)
	if err != nil {
		return nil, fmt.Errorf("percolation: New(%d): %w", n, err)
	}

	return &Grid{
		side:   n,
		status: make([]Status, n*n),
		uf:     uf,
	}, nil
}

// Size returns the grid side n.
func (g *Grid) Size() int {
	return g.side
}

// Open opens the site (row, col) if it is not open already.
// Re-opening an open site is a no-op and does not change NumberOfOpenSites.
// Returns ErrInvalidCoordinate if row or col lies outside [1, n].
// Complexity: O(log n).
func (g *Grid) Open(row, col int) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	if g.status[idx] != Closed {
		return nil
	}

	// Flags are collected from the neighbour roots before each union, so the
	// new root inherits the reachability of every component it absorbs.
	flags := Open
	r, c := row-1, col-1
	for _, d := range neighbourOffsets {
		nr, nc := r+d[0], c+d[1]
		if !g.inBounds(nr, nc) {
			continue
		}
		incoming, err := g.connect(idx, nr*g.side+nc)
		if err != nil {
			return err
		}
		flags |= incoming
	}
	if r == 0 {
		flags |= ReachesTop
	}
	if r == g.side-1 {
		flags |= ReachesBottom
	}

	root, err := g.uf.Find(idx)
	if err != nil {
		return err
	}
	g.status[root] |= flags
	g.status[idx] = g.status[root]
	if g.status[root].Has(Percolating) {
		g.percolates = true
	}
	g.openCount++

	return nil
}

// IsOpen reports whether (row, col) has been opened.
// Returns ErrInvalidCoordinate if row or col lies outside [1, n].
// Complexity: O(1).
func (g *Grid) IsOpen(row, col int) (bool, error) {
	idx, err := g.index(row, col)
	if err != nil {
		return false, err
	}

	return g.status[idx] != Closed, nil
}

// IsFull reports whether (row, col) is open and its component currently
// reaches the top row. The component root is resolved on every call, so a
// site opened before its component touched the top is still reported full.
// Returns ErrInvalidCoordinate if row or col lies outside [1, n].
// Complexity: O(log n).
func (g *Grid) IsFull(row, col int) (bool, error) {
	s, err := g.Status(row, col)
	if err != nil {
		return false, err
	}

	return s.Has(ReachesTop), nil
}

// Status returns the aggregate Status of the component holding (row, col),
// or Closed if the site is closed.
// Returns ErrInvalidCoordinate if row or col lies outside [1, n].
// Complexity: O(log n).
func (g *Grid) Status(row, col int) (Status, error) {
	idx, err := g.index(row, col)
	if err != nil {
		return Closed, err
	}
	if g.status[idx] == Closed {
		return Closed, nil
	}
	root, err := g.uf.Find(idx)
	if err != nil {
		return Closed, err
	}

	return g.status[root], nil
}

// NumberOfOpenSites returns how many distinct sites have been opened.
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// Percolates reports whether some component touches both the top and the
// bottom row. Once true it stays true.
func (g *Grid) Percolates() bool {
	return g.percolates
}

// OpenMask returns a copy of the open state as mask[row-1][col-1].
// Complexity: O(n²) time and memory.
func (g *Grid) OpenMask() [][]bool {
	mask := make([][]bool, g.side)
	for r := 0; r < g.side; r++ {
		mask[r] = make([]bool, g.side)
		for c := 0; c < g.side; c++ {
			mask[r][c] = g.status[r*g.side+c] != Closed
		}
	}

	return mask
}

// connect unions idx with near when near is open and returns the Status
// held by near's root before the union, or Closed when near is closed.
func (g *Grid) connect(idx, near int) (Status, error) {
	if g.status[near] == Closed {
		return Closed, nil
	}
	root, err := g.uf.Find(near)
	if err != nil {
		return Closed, err
	}
	incoming := g.status[root]
	if _, err = g.uf.Union(idx, near); err != nil {
		return Closed, err
	}

	return incoming, nil
}

// index validates a 1-indexed coordinate and maps it to a row-major index.
func (g *Grid) index(row, col int) (int, error) {
	if row < 1 || row > g.side || col < 1 || col > g.side {
		return 0, fmt.Errorf("percolation: (row, col) = (%d, %d) with n = %d: %w",
			row, col, g.side, ErrInvalidCoordinate)
	}

	return (row-1)*g.side + (col - 1), nil
}

// inBounds reports whether the 0-indexed (r, c) lies inside the grid.
func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.side && c >= 0 && c < g.side
}
