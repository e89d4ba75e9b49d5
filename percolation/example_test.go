package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

// ExampleGrid_Open opens a vertical path through a 3×3 grid, then an
// isolated bottom site that stays empty despite the percolating column.
func ExampleGrid_Open() {
	g, _ := percolation.New(3)

	_ = g.Open(1, 3)
	_ = g.Open(2, 3)
	fmt.Println("percolates:", g.Percolates())

	_ = g.Open(3, 3)
	fmt.Println("percolates:", g.Percolates())

	_ = g.Open(3, 1)
	full, _ := g.IsFull(3, 1)
	fmt.Println("(3,1) full:", full)
	fmt.Println("open sites:", g.NumberOfOpenSites())

	// Output:
	// percolates: false
	// percolates: true
	// (3,1) full: false
	// open sites: 4
}
