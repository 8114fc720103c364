// Package dfs implements single-source depth‑first search on implicit graphs.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, recording post-order
//   - Hook: OnExit (post‑order) with error aborts
//   - Cancellation via context.Context
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if g validates vertices and start is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnExit.
package dfs

import (
	"fmt"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[V comparable] struct {
	graph Graph[V]      // underlying graph
	opts  DFSOptions[V] // traversal options
	res   *DFSResult[V] // result collector
}

// DFS performs depth‑first search on graph g from start. Returns DFSResult
// or error if aborted by context or hook.
func DFS[V comparable](g Graph[V], start V, opts ...Option[V]) (*DFSResult[V], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify start when the graph can tell
	if vc, ok := g.(vertexChecker[V]); ok && !vc.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	// 4. Initialize result
	res := &DFSResult[V]{
		Depth:   make(map[V]int),
		Parent:  make(map[V]V),
		Visited: make(map[V]bool),
	}
	walker := &dfsWalker[V]{graph: g, opts: dopts, res: res}

	// 5. Traverse
	if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits v at the given depth, recursing to neighbors.
// It honors context cancellation and the post-order hook.
func (w *dfsWalker[V]) traverse(v V, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	// 3. Explore each neighbor
	for _, nb := range w.graph.Neighbors(v) {
		if !w.res.Visited[nb] {
			w.res.Parent[nb] = v
			if err := w.traverse(nb, depth+1); err != nil {
				return err
			}
		}
	}

	// 4. Post‑order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}

	// 5. Record finish order
	w.res.Order = append(w.res.Order, v)

	return nil
}
