// Package unionfind provides a weighted quick-union disjoint-set structure
// over a fixed universe of integer elements [0, n).
//
// What:
//
//   - DisjointSet partitions n elements into disjoint sets.
//   - Union merges two sets, attaching the smaller tree under the larger one.
//   - Find walks parent pointers to the root of an element's tree.
//   - Count reports how many disjoint sets remain.
//
// Why weighted quick-union without path compression:
//
//   - Union by size alone bounds every tree height by ⌊log₂ n⌋, so Find is
//     O(log n) in the worst case without rewriting the parent array.
//   - Find never mutates, so a query cannot disturb the shape of the forest
//     that callers (e.g. the percolation grid) attach per-root data to.
//
// Representation:
//
//   - parent[i] is the parent index of element i (root when parent[i] == i).
//   - size[i] is the number of elements in the tree rooted at i; it is only
//     meaningful while i is a root.
//
// Complexity:
//
//   - New:   O(n) time and memory.
//   - Find:  O(log n).
//   - Union: O(log n).
//   - Count: O(1).
//
// Errors:
//
//   - ErrInvalidSize: New called with a negative universe size.
//   - ErrOutOfRange:  an element index outside [0, n).
//
// Concurrency:
//
//   - A DisjointSet is not safe for concurrent mutation. Guard it externally
//     or confine it to one goroutine.
package unionfind
