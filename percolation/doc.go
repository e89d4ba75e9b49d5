// Package percolation models an n×n grid of sites that are opened one at a
// time and answers, incrementally, whether an open path joins the top row to
// the bottom row.
//
// What:
//
//   - Grid tracks which sites are open, which are full (connected to the top
//     row through open sites) and whether the system percolates.
//   - Coordinates are 1-indexed: row and col range over [1, n].
//   - Connectivity is orthogonal (N, E, S, W), maintained by a single
//     unionfind.DisjointSet of n² elements.
//
// Boundary tracking without virtual nodes:
//
//	The textbook construction links every top-row site to a virtual source
//	and every bottom-row site to a virtual sink. Once the system percolates,
//	any open site touching the bottom row is then reported full through the
//	sink ("backwash"). Grid instead keeps a small Status bitmask on the root
//	of every component: ReachesTop and ReachesBottom are ORed together as
//	components merge, and IsFull re-resolves the current root on every call.
//	A site is full exactly when its live component touches the top row.
//
// Open(row, col):
//
//  1. Mark the site Open.
//  2. For each in-bounds open neighbour, read the Status of the neighbour's
//     root, OR it into the new flags, then union the two sites.
//  3. OR ReachesTop on row 1 and ReachesBottom on row n.
//  4. Store the combined flags on the new root and on the site itself.
//  5. Percolation is reached when the root holds both boundary bits.
//
// Merging is an OR over the incoming flags, so the neighbour order does not
// change the final aggregate.
//
// Complexity:
//
//   - New:    O(n²) time and memory.
//   - Open:   O(log n) (at most four unions).
//   - IsFull: O(log n); IsOpen, NumberOfOpenSites, Percolates: O(1).
//
// Errors:
//
//   - ErrInvalidSize:       New called with n < 0.
//   - ErrInvalidCoordinate: row or col outside [1, n].
//
// Concurrency:
//
//   - A Grid is not safe for concurrent mutation.
package percolation
