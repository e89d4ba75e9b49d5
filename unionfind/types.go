// Package unionfind defines the DisjointSet type and its sentinel errors.
package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrInvalidSize indicates a negative universe size was requested.
	ErrInvalidSize = errors.New("unionfind: size must be non-negative")
	// ErrOutOfRange indicates an element index outside [0, n).
	ErrOutOfRange = errors.New("unionfind: index out of range")
)

// DisjointSet is a weighted quick-union forest over the elements [0, n).
// The universe size is fixed at construction.
type DisjointSet struct {
	parent []int // parent[i] == i iff i is a root
	size   []int // valid only for roots
	count  int   // number of disjoint sets
}
