package gridgraph

// ConnectedComponents finds all clusters of open sites through orthogonal neighbours.
// Returns a slice of components; each component is a slice of site indices
// (row-major) in BFS discovery order. Components are listed in row-major
// order of their first site.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Sites[y][x] || seen[gg.index(x, y)] {
				continue
			}
			comps = append(comps, gg.flood([]int{gg.index(x, y)}, seen))
		}
	}

	return comps
}

// FullSites returns a row-major mask of open sites connected to the top row.
// Time: O(W·H). Memory: O(W·H).
func (gg *GridGraph) FullSites() []bool {
	seen := make([]bool, gg.Width*gg.Height)
	var sources []int
	for x := 0; x < gg.Width; x++ {
		if gg.Sites[0][x] {
			sources = append(sources, gg.index(x, 0))
		}
	}
	gg.flood(sources, seen)

	return seen
}

// Percolates reports whether some open site in the bottom row is full.
// Time: O(W·H).
func (gg *GridGraph) Percolates() bool {
	full := gg.FullSites()
	y := gg.Height - 1
	for x := 0; x < gg.Width; x++ {
		if full[gg.index(x, y)] {
			return true
		}
	}

	return false
}

// flood runs a multi-source BFS over open sites, marking seen and returning
// every newly visited index in discovery order.
func (gg *GridGraph) flood(sources []int, seen []bool) []int {
	queue := make([]int, 0, len(sources))
	for _, s := range sources {
		if !seen[s] {
			seen[s] = true
			queue = append(queue, s)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.IsOpen(vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
