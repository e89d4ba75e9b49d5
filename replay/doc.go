// Package replay records and replays sequences of percolation.Grid.Open
// calls in a plain text trace format.
//
// Format:
//
//	n
//	row col
//	row col
//	...
//
// The first token is the grid side n; every following pair is one 1-indexed
// Open call. Tokens are unsigned decimal integers separated by any
// whitespace, so "3 1 3 2 3" on one line is the same trace as the
// line-per-pair layout that Recorder writes.
//
// Errors:
//
//   - ErrEmptyTrace:     input holds no tokens.
//   - ErrMalformedTrace: a token is not an unsigned integer, or a row has
//     no matching column.
//   - percolation.ErrInvalidCoordinate: wrapped, when a replayed pair lies
//     outside the grid.
package replay
