// Package bfs provides breadth-first search over implicit graphs,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph   Graph[V]
	opts    Options[V]
	ctx     context.Context
	queue   []queueItem[V]
	head    int
	visited map[V]bool
	res     *Result[V]
}

// BFS runs breadth-first search on g starting from start (plus any
// WithSources vertices), applying any number of functional Options.
// Returns ErrGraphNil for a nil graph, ErrStartVertexNotFound when g can
// validate vertices and a start is absent, or the context error on
// cancellation.
func BFS[V comparable](g Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	starts := append([]V{start}, o.Sources...)
	if vc, ok := g.(vertexChecker[V]); ok {
		for _, s := range starts {
			if !vc.HasVertex(s) {
				return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, s)
			}
		}
	}

	w := &walker[V]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[V]bool),
		res: &Result[V]{
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}

	// Seed queue with every start vertex (no parent)
	for _, s := range starts {
		if !w.visited[s] {
			w.enqueue(s, 0, s, false)
		}
	}

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, and adds it to
// the queue.
func (w *walker[V]) enqueue(v V, d int, parent V, hasParent bool) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if hasParent {
		w.res.Parent[v] = parent
	}
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until empty, target, or cancellation.
func (w *walker[V]) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, item.v)
		if w.opts.HasTarget && item.v == w.opts.Target {
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and enqueues each unseen neighbor.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) {
	nextDepth := item.depth + 1
	for _, nbr := range w.graph.Neighbors(item.v) {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.v, true)
		}
	}
}
