// Package gridgraph treats a 2D mask of open/closed sites as a graph and
// answers connectivity questions by plain breadth-first search.
//
// What:
//
//   - GridGraph wraps a rectangular [][]bool mask (true = open site).
//   - ConnectedComponents lists the clusters of open sites.
//   - FullSites marks every open site reachable from the top row.
//   - Percolates reports whether an open path joins the top and bottom rows.
//   - MinOpenings finds the fewest closed sites to open so the mask percolates.
//
// Why:
//
//   - It recomputes everything from scratch, so it serves as an independent
//     oracle for incremental structures such as percolation.Grid: a BFS
//     from the top row can never suffer from backwash.
//   - MinOpenings answers "how far from percolating" for a partially opened
//     system without mutating it.
//
// Coordinates:
//
//   - (x, y) = (column, row), both 0-indexed; indices are row-major y*Width+x.
//
// Complexity:
//
//   - ConnectedComponents, FullSites, Percolates: O(W×H), Memory: O(W×H).
//   - MinOpenings: O(W×H) with a 0-1 BFS deque, Memory: O(W×H).
//
// Adjacency:
//
//   - Orthogonal only (N, E, S, W), the same model as percolation.Grid;
//     sites touching at a corner are not connected.
//
// Errors:
//
//   - ErrEmptyGrid:      mask has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
