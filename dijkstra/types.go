// Package dijkstra defines core types for Dijkstra's shortest-path algorithm
// on weighted graphs.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrNegativeWeight  if a negative edge weight is relaxed.
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Edge is one weighted out-edge.
type Edge[V comparable] struct {
	To     V
	Weight int64
}

// WeightedGraph lists the out-edges of a vertex.
type WeightedGraph[V comparable] interface {
	Edges(v V) []Edge[V]
}

// EdgeFunc adapts a plain function to WeightedGraph.
type EdgeFunc[V comparable] func(v V) []Edge[V]

// Edges calls f(v).
func (f EdgeFunc[V]) Edges(v V) []Edge[V] { return f(v) }
