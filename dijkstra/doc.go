// Package dijkstra provides Dijkstra's shortest-path algorithm on implicit
// weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Returns a predecessor map alongside the distances for path reconstruction.
//
// Key features:
//
//   - Vertices are any comparable type; graphs are anything with Edges(v) []Edge[V].
//   - Path rebuilds a source → dest route from the predecessor map.
//
// With every weight equal to 1 the distances coincide with a breadth-first
// search, which makes Dijkstra a convenient oracle when testing BFS-based
// solvers.
//
// API reference:
//
//	func Dijkstra[V comparable](
//	    g WeightedGraph[V],
//	    source V,
//	) (dist map[V]int64, prev map[V]V, err error)
//
//	  - dist:    map[v] = minimal distance from source to v; unreachable v are absent.
//	  - prev:    map[v] = immediate predecessor of v on one shortest path.
//	  - err:     one of the sentinel errors, or nil on success.
//
// Thread safety:
//
//   - Dijkstra keeps all state per call; concurrent calls are safe if g is.
package dijkstra
