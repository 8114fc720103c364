// Package dfs defines types and options for depth-first search traversal,
// including cancellation and a post-order hook.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS or
	// TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is unknown to a
	// graph that can validate its vertices.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a back edge was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Graph is the adjacency view DFS needs.
type Graph[V comparable] interface {
	Neighbors(v V) []V
}

// vertexChecker is implemented by graphs that know their vertex set.
type vertexChecker[V comparable] interface {
	HasVertex(v V) bool
}

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option[V comparable] func(*DFSOptions[V])

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when the hook is O(1).
type DFSOptions[V comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal with that error.
	OnExit func(v V) error
}

// DefaultOptions returns a DFSOptions struct with a Background context and
// no post-order hook.
func DefaultOptions[V comparable]() DFSOptions[V] {
	return DFSOptions[V]{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *DFSOptions[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a vertex’s descendants have been fully explored.
func WithOnExit[V comparable](fn func(v V) error) Option[V] {
	return func(o *DFSOptions[V]) {
		o.OnExit = fn
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult[V comparable] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []V

	// Depth maps each vertex to its distance (#edges) from the start.
	Depth map[V]int

	// Parent maps each vertex to the vertex from which it was first discovered.
	// The start does not appear in this map.
	Parent map[V]V

	// Visited flags which vertices were reached during the traversal.
	Visited map[V]bool
}
