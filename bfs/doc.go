// Package bfs provides breadth-first search over implicit graphs, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from one or
//     more start vertices.
//   - Vertices are any comparable type: grid indices, points, strings.
//   - The graph is anything with Neighbors(v) []V. Graphs that also
//     implement HasVertex(v) bool get the start vertices validated.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from the nearest start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Stops early once a target vertex is dequeued (WithTarget).
//
// Determinism
//
//	Neighbors are enqueued in the order the graph returns them, so the visit
//	sequence is reproducible whenever Neighbors is.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS[int](grid, start, bfs.WithTarget(end))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, or context errors
//	}
//	steps, ok := res.DistanceTo(end)
//
// Options
//
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithSources(v...):           additional start vertices (multi-source BFS).
//   - WithTarget(v):               stop as soon as v is dequeued.
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
package bfs
