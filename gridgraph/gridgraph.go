package gridgraph

// FromSites constructs a GridGraph from a non-empty, rectangular open mask.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if the mask has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func FromSites(sites [][]bool) (*GridGraph, error) {
	if len(sites) == 0 || len(sites[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(sites), len(sites[0])
	for _, row := range sites {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		copy(cells[y], sites[y])
	}

	return &GridGraph{
		Width:   w,
		Height:  h,
		Sites:   cells,
		offsets: [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed (dx, dy) neighbor offsets.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// IsOpen reports whether the site at (x,y) is open. Out-of-bounds sites are closed.
func (gg *GridGraph) IsOpen(x, y int) bool {
	return gg.InBounds(x, y) && gg.Sites[y][x]
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
