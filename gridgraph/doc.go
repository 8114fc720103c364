// Package gridgraph treats a rectangular grid of runes as an implicit graph.
//
// What:
//
//   - Grid wraps a rectangular [][]rune parsed from puzzle text.
//   - Cells are addressed by (x, y) or by a row-major index y*Width+x.
//   - Neighbors yields in-bounds adjacent indices under Conn4 or Conn8.
//   - Find / FindAll locate marker runes such as 'S' or 'E'.
//
// Why:
//
//   - Height maps, pipe mazes, tree patches and word searches all share
//     the same bounds checks and coordinate arithmetic.
//   - Row-major indices are compact vertex IDs for bfs and dijkstra.
//
// Complexity:
//
//   - Parse: O(W×H) time and memory.
//   - InBounds, Index, Coordinate, At: O(1).
//   - Neighbors: O(d), d = 4 or 8.
//   - Find, FindAll: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (N, E, S, W) or Conn8 (adds diagonals).
//
// Errors:
//
//   - ErrEmptyGrid: the input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
