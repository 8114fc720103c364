// Package dfs provides core algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"context"
	"fmt"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[V comparable] struct {
	graph Graph[V]    // the graph being sorted
	opts  topoOptions // traversal options (cancellation)
	state map[V]int   // visitation state: White, Gray, Black
	order []V         // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of the vertices reachable
// from vertices in the directed graph g. Roots are tried in the given order,
// so the result is deterministic for a deterministic Neighbors.
// If a cycle is detected, returns an error wrapping ErrCycleDetected.
func TopologicalSort[V comparable](g Graph[V], vertices []V, options ...TopoOption) ([]V, error) {
	// 1. Validate graph
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	sorter := &topoSorter[V]{
		graph: g,
		opts:  opts,
		state: make(map[V]int, len(vertices)),
		order: make([]V, 0, len(vertices)),
	}
	// 4. Drive DFS from every unvisited vertex
	for _, v := range vertices {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from v, marking states and detecting cycles.
func (t *topoSorter[V]) visit(v V) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Cycle detection: if already Gray, we found a back-edge
	if t.state[v] == Gray {
		return fmt.Errorf("%w: back edge into %v", ErrCycleDetected, v)
	}
	// 3. Already fully processed (Black)? then skip
	if t.state[v] == Black {
		return nil
	}
	// 4. Mark as in-progress (Gray)
	t.state[v] = Gray

	// 5. Explore each outgoing edge
	for _, nb := range t.graph.Neighbors(v) {
		if err := t.visit(nb); err != nil {
			return err
		}
	}

	// 6. Mark as fully explored (Black) and record in post-order
	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}
