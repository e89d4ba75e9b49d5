package unionfind

// Depth returns the number of parent hops from x to its root.
// Test-only bridge for checking the union-by-size height bound.
func (d *DisjointSet) Depth(x int) int {
	depth := 0
	for x != d.parent[x] {
		x = d.parent[x]
		depth++
	}

	return depth
}
