// Package dfs implements depth‑first search traversal and topological sort
// over implicit directed graphs.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - A post‑order hook
//   - Cancellation via context.Context
//   - TopologicalSort: computes a linear ordering of vertices in a directed
//     acyclic graph (DAG), returning ErrCycleDetected if cycles exist.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - Graph: the adjacency view, any comparable vertex type
//   - DFSOptions: holds Context and OnExit
//   - DFSResult: collects post‑order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrStartVertexNotFound  start vertex not in a validating graph
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnExit
package dfs
