// Package bfs provides tunable options and error definitions
// for breadth‐first search.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the graph can validate vertices
	// and a start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoPath is returned by PathTo for a vertex the search never reached.
	ErrNoPath = errors.New("bfs: no path to vertex")
)

// Graph is the minimal view BFS needs: the out-neighbors of a vertex.
type Graph[V comparable] interface {
	Neighbors(v V) []V
}

// vertexChecker is implemented by graphs that know their vertex set.
type vertexChecker[V comparable] interface {
	HasVertex(v V) bool
}

// Option configures BFS behavior via functional arguments.
type Option[V comparable] func(*Options[V])

// Options holds parameters to customize BFS execution.
type Options[V comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Sources are extra start vertices, all at depth 0.
	Sources []V

	// Target, when HasTarget is set, ends the search once it is dequeued.
	Target    V
	HasTarget bool

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor V) bool
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no extra sources, no target
//   - no filtering (all neighbors allowed)
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:            context.Background(),
		FilterNeighbor: func(_, _ V) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSources adds start vertices. Duplicates are ignored.
func WithSources[V comparable](vs ...V) Option[V] {
	return func(o *Options[V]) {
		o.Sources = append(o.Sources, vs...)
	}
}

// WithTarget stops the search as soon as v is dequeued.
func WithTarget[V comparable](v V) Option[V] {
	return func(o *Options[V]) {
		o.Target = v
		o.HasTarget = true
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[V comparable](fn func(curr, neighbor V) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the nearest start.
//   - Parent: map from vertex to its predecessor in the BFS tree.
type Result[V comparable] struct {
	Order  []V
	Depth  map[V]int
	Parent map[V]V
}

// Reached reports whether v was discovered.
func (r *Result[V]) Reached(v V) bool {
	_, ok := r.Depth[v]
	return ok
}

// DistanceTo returns the edge count from the nearest start to v.
func (r *Result[V]) DistanceTo(v V) (int, bool) {
	d, ok := r.Depth[v]
	return d, ok
}

// PathTo reconstructs the path from a start vertex to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []V{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
