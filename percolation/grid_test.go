package percolation_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/percolation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustGrid builds an n×n grid or fails the test.
func mustGrid(t *testing.T, n int) *percolation.Grid {
	t.Helper()
	g, err := percolation.New(n)
	require.NoError(t, err, "New(%d)", n)
	return g
}

// openAll opens every (row, col) pair in order.
func openAll(t *testing.T, g *percolation.Grid, sites ...[2]int) {
	t.Helper()
	for _, s := range sites {
		require.NoError(t, g.Open(s[0], s[1]), "Open(%d,%d)", s[0], s[1])
	}
}

// TestNew_InvalidSize rejects negative sides and sides whose n² overflows int.
func TestNew_InvalidSize(t *testing.T) {
	for _, n := range []int{-3, math.MaxInt / 2, math.MaxInt, int(math.Sqrt(float64(math.MaxInt))) + 2} {
		g, err := percolation.New(n)
		assert.ErrorIs(t, err, percolation.ErrInvalidSize, "New(%d)", n)
		assert.Nil(t, g, "New(%d)", n)
	}
}

// TestNew_Empty verifies a zero-sized grid is valid but has no coordinates.
func TestNew_Empty(t *testing.T) {
	g := mustGrid(t, 0)
	assert.Equal(t, 0, g.Size())
	assert.False(t, g.Percolates())
	assert.ErrorIs(t, g.Open(1, 1), percolation.ErrInvalidCoordinate)
	assert.Empty(t, g.OpenMask())
}

// TestCoordinates_Invalid checks bounds on every coordinate-taking method.
func TestCoordinates_Invalid(t *testing.T) {
	g := mustGrid(t, 3)
	bad := [][2]int{{0, 1}, {1, 0}, {4, 1}, {1, 4}, {-1, 2}, {2, -1}}
	for _, rc := range bad {
		r, c := rc[0], rc[1]
		if err := g.Open(r, c); !errors.Is(err, percolation.ErrInvalidCoordinate) {
			t.Errorf("Open(%d,%d) error = %v; want ErrInvalidCoordinate", r, c, err)
		}
		if _, err := g.IsOpen(r, c); !errors.Is(err, percolation.ErrInvalidCoordinate) {
			t.Errorf("IsOpen(%d,%d) error = %v; want ErrInvalidCoordinate", r, c, err)
		}
		if _, err := g.IsFull(r, c); !errors.Is(err, percolation.ErrInvalidCoordinate) {
			t.Errorf("IsFull(%d,%d) error = %v; want ErrInvalidCoordinate", r, c, err)
		}
		if _, err := g.Status(r, c); !errors.Is(err, percolation.ErrInvalidCoordinate) {
			t.Errorf("Status(%d,%d) error = %v; want ErrInvalidCoordinate", r, c, err)
		}
	}
	assert.Equal(t, 0, g.NumberOfOpenSites())
}

// TestSingleSite verifies a 1×1 grid percolates as soon as its site opens.
func TestSingleSite(t *testing.T) {
	g := mustGrid(t, 1)
	assert.False(t, g.Percolates())

	openAll(t, g, [2]int{1, 1})
	assert.True(t, g.Percolates())
	full, err := g.IsFull(1, 1)
	require.NoError(t, err)
	assert.True(t, full)

	s, err := g.Status(1, 1)
	require.NoError(t, err)
	assert.True(t, s.Has(percolation.Percolating|percolation.Open), "status = %v", s)
}

// TestBackwash replays the classic 3×3 scenario: after percolation through
// the right column, an isolated bottom-left site must not be full.
func TestBackwash(t *testing.T) {
	g := mustGrid(t, 3)

	openAll(t, g, [2]int{1, 3}, [2]int{2, 3})
	assert.False(t, g.Percolates())

	openAll(t, g, [2]int{3, 3})
	assert.True(t, g.Percolates())

	openAll(t, g, [2]int{3, 1})
	full, err := g.IsFull(3, 1)
	require.NoError(t, err)
	assert.False(t, full, "isolated bottom site reported full")

	open, err := g.IsOpen(3, 1)
	require.NoError(t, err)
	assert.True(t, open)

	s, err := g.Status(3, 1)
	require.NoError(t, err)
	assert.Equal(t, percolation.Open|percolation.ReachesBottom, s)
}

// TestIsFull_LateTopConnection opens a bottom cluster first and joins it to
// the top afterwards; every earlier site must become full.
func TestIsFull_LateTopConnection(t *testing.T) {
	g := mustGrid(t, 4)
	openAll(t, g, [2]int{4, 2}, [2]int{3, 2}, [2]int{3, 3})

	full, _ := g.IsFull(4, 2)
	assert.False(t, full)

	openAll(t, g, [2]int{1, 3}, [2]int{2, 3})
	for _, rc := range [][2]int{{4, 2}, {3, 2}, {3, 3}, {2, 3}, {1, 3}} {
		full, err := g.IsFull(rc[0], rc[1])
		require.NoError(t, err)
		assert.True(t, full, "IsFull(%d,%d)", rc[0], rc[1])
	}
	assert.True(t, g.Percolates())
}

// TestOpen_Idempotent checks repeated opens leave the count unchanged.
func TestOpen_Idempotent(t *testing.T) {
	g := mustGrid(t, 5)
	openAll(t, g, [2]int{2, 2}, [2]int{2, 2}, [2]int{2, 3}, [2]int{2, 2})
	assert.Equal(t, 2, g.NumberOfOpenSites())
}

// TestOpen_MergesFourNeighbours opens a centre site that joins four
// components carrying different boundary bits in one call.
func TestOpen_MergesFourNeighbours(t *testing.T) {
	g := mustGrid(t, 3)
	openAll(t, g, [2]int{1, 2}, [2]int{3, 2}, [2]int{2, 1}, [2]int{2, 3})
	assert.False(t, g.Percolates())

	openAll(t, g, [2]int{2, 2})
	assert.True(t, g.Percolates())
	for _, rc := range [][2]int{{1, 2}, {3, 2}, {2, 1}, {2, 3}, {2, 2}} {
		s, err := g.Status(rc[0], rc[1])
		require.NoError(t, err)
		assert.True(t, s.Has(percolation.Percolating), "Status(%d,%d) = %v", rc[0], rc[1], s)
	}
}

// TestOpenMask reflects the open state row-major and is a copy.
func TestOpenMask(t *testing.T) {
	g := mustGrid(t, 2)
	openAll(t, g, [2]int{1, 2}, [2]int{2, 1})

	m := g.OpenMask()
	assert.Equal(t, [][]bool{{false, true}, {true, false}}, m)

	m[0][0] = true
	open, _ := g.IsOpen(1, 1)
	assert.False(t, open, "OpenMask must not alias grid state")
}

// TestStatus_String covers the debug rendering of the bitmask.
func TestStatus_String(t *testing.T) {
	assert.Equal(t, "closed", percolation.Closed.String())
	assert.Equal(t, "open", percolation.Open.String())
	assert.Equal(t, "open|top|bottom", (percolation.Open | percolation.Percolating).String())
}

// TestRandomOpenings_Invariants drives random openings and checks the
// monotonic and implication properties after every step.
func TestRandomOpenings_Invariants(t *testing.T) {
	const n = 12
	r := rand.New(rand.NewSource(2024))
	g := mustGrid(t, n)

	prevOpen := 0
	wasPercolating := false
	for step := 0; step < 3*n*n; step++ {
		require.NoError(t, g.Open(1+r.Intn(n), 1+r.Intn(n)))

		if g.NumberOfOpenSites() < prevOpen {
			t.Fatalf("step %d: open count decreased %d -> %d", step, prevOpen, g.NumberOfOpenSites())
		}
		prevOpen = g.NumberOfOpenSites()

		if wasPercolating && !g.Percolates() {
			t.Fatalf("step %d: percolation flag reset", step)
		}
		wasPercolating = g.Percolates()
	}

	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			full, _ := g.IsFull(row, col)
			open, _ := g.IsOpen(row, col)
			if full && !open {
				t.Errorf("(%d,%d) full but not open", row, col)
			}
		}
	}
}

// TestMatchesBFSOracle compares IsFull and Percolates with an independent
// breadth-first search after every random opening.
func TestMatchesBFSOracle(t *testing.T) {
	for _, n := range []int{1, 2, 5, 9} {
		r := rand.New(rand.NewSource(int64(n)))
		g := mustGrid(t, n)
		for step := 0; step < n*n*2; step++ {
			require.NoError(t, g.Open(1+r.Intn(n), 1+r.Intn(n)))

			oracle, err := gridgraph.FromSites(g.OpenMask())
			require.NoError(t, err)
			want := oracle.FullSites()

			require.Equal(t, oracle.Percolates(), g.Percolates(), "n=%d step=%d", n, step)
			for row := 1; row <= n; row++ {
				for col := 1; col <= n; col++ {
					full, _ := g.IsFull(row, col)
					if full != want[(row-1)*n+(col-1)] {
						t.Fatalf("n=%d step=%d: IsFull(%d,%d)=%t; oracle %t",
							n, step, row, col, full, want[(row-1)*n+(col-1)])
					}
				}
			}
		}
	}
}

// TestOpenOrderIndependence opens one fixed site set in many orders;
// the aggregate status of every site must not depend on the order.
func TestOpenOrderIndependence(t *testing.T) {
	const n = 6
	r := rand.New(rand.NewSource(11))
	var sites [][2]int
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			if r.Float64() < 0.6 {
				sites = append(sites, [2]int{row, col})
			}
		}
	}

	reference := mustGrid(t, n)
	openAll(t, reference, sites...)

	for trial := 0; trial < 20; trial++ {
		shuffled := append([][2]int(nil), sites...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		g := mustGrid(t, n)
		openAll(t, g, shuffled...)
		require.Equal(t, reference.Percolates(), g.Percolates())
		require.Equal(t, reference.NumberOfOpenSites(), g.NumberOfOpenSites())
		for row := 1; row <= n; row++ {
			for col := 1; col <= n; col++ {
				want, _ := reference.Status(row, col)
				got, _ := g.Status(row, col)
				if got != want {
					t.Fatalf("trial %d: Status(%d,%d) = %v; want %v", trial, row, col, got, want)
				}
			}
		}
	}
}
