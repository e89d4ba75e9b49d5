package unionfind

import "fmt"

// New creates a DisjointSet of n singleton sets, so that Count() == n.
// Returns ErrInvalidSize if n < 0. A zero-sized set is valid; every
// element query on it fails with ErrOutOfRange.
// Complexity: O(n) time and memory.
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("unionfind: New(%d): %w", n, ErrInvalidSize)
	}
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	return &DisjointSet{parent: parent, size: size, count: n}, nil
}

// Len returns the fixed universe size n.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Count returns the current number of disjoint sets.
// Complexity: O(1).
func (d *DisjointSet) Count() int {
	return d.count
}

// Find returns the root of the tree containing x.
// Parent pointers are followed without compression, so Find never mutates.
// Returns ErrOutOfRange if x is not in [0, n).
// Complexity: O(log n).
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.validate(x); err != nil {
		return 0, err
	}

	return d.root(x), nil
}

// Union merges the sets containing a and b.
// The root of the smaller tree is attached under the root of the larger one;
// on equal sizes b's root goes under a's root. Returns true when a merge
// happened and false when a and b were already in the same set.
// Returns ErrOutOfRange (and changes nothing) if either index is invalid.
// Complexity: O(log n).
func (d *DisjointSet) Union(a, b int) (bool, error) {
	if err := d.validate(a); err != nil {
		return false, err
	}
	if err := d.validate(b); err != nil {
		return false, err
	}

	ra, rb := d.root(a), d.root(b)
	if ra == rb {
		return false, nil
	}
	if d.size[ra] < d.size[rb] {
		d.parent[ra] = rb
		d.size[rb] += d.size[ra]
	} else {
		d.parent[rb] = ra
		d.size[ra] += d.size[rb]
	}
	d.count--

	return true, nil
}

// Connected reports whether a and b belong to the same set.
// It is a convenience wrapper over Find(a) == Find(b).
func (d *DisjointSet) Connected(a, b int) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Size returns the number of elements in the set containing x.
func (d *DisjointSet) Size(x int) (int, error) {
	r, err := d.Find(x)
	if err != nil {
		return 0, err
	}

	return d.size[r], nil
}

// root walks to the root of x. x must already be validated.
func (d *DisjointSet) root(x int) int {
	for x != d.parent[x] {
		x = d.parent[x]
	}

	return x
}

func (d *DisjointSet) validate(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("unionfind: index %d not in [0,%d): %w", x, len(d.parent), ErrOutOfRange)
	}

	return nil
}
