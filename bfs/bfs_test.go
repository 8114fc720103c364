package bfs_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventofcode/bfs"
)

// adjacency is an explicit graph used by the tests; it validates vertices.
type adjacency map[string][]string

func (a adjacency) Neighbors(v string) []string { return a[v] }

func (a adjacency) HasVertex(v string) bool {
	_, ok := a[v]
	return ok
}

// neighborFunc adapts a plain function to bfs.Graph.
type neighborFunc[V comparable] func(v V) []V

func (f neighborFunc[V]) Neighbors(v V) []V { return f(v) }

// undirected builds an adjacency from edge pairs, preserving insertion order.
func undirected(edges ...[2]string) adjacency {
	a := adjacency{}
	for _, e := range edges {
		a[e[0]] = append(a[e[0]], e[1])
		a[e[1]] = append(a[e[1]], e[0])
	}

	return a
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := adjacency{"A": nil}
	_, err = bfs.BFS[string](g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS[string](g, "A", bfs.WithSources("nope"))
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	res, err := bfs.BFS[string](adjacency{"A": nil}, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Empty(t, res.Parent)
}

// TestBFS_CycleAndDepths covers a simple cycle and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	// A–B–C–D–A
	g := undirected([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})

	res, err := bfs.BFS[string](g, "A")
	require.NoError(t, err)
	require.Len(t, res.Order, 4)
	assert.Equal(t, "A", res.Order[0])
	assert.ElementsMatch(t, []string{"B", "D"}, res.Order[1:3])
	assert.Equal(t, "C", res.Order[3])

	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := undirected([2]string{"X", "Y"}, [2]string{"P", "Q"})

	resX, err := bfs.BFS[string](g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, resX.Order)
	assert.False(t, resX.Reached("P"))

	resP, err := bfs.BFS[string](g, "P")
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "Q"}, resP.Order)
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := undirected([2]string{"A", "B"}, [2]string{"B", "C"})

	res, err := bfs.BFS[string](g, "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_SelfLoopAndParallelDedup ensures that loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := adjacency{"A": {"A", "B", "B"}, "B": nil}

	res, err := bfs.BFS[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_Target verifies the search stops once the target is dequeued.
func TestBFS_Target(t *testing.T) {
	// chain 0-1-2-...-9 expressed as a function
	chain := neighborFunc[int](func(v int) []int {
		var out []int
		if v > 0 {
			out = append(out, v-1)
		}
		if v < 9 {
			out = append(out, v+1)
		}
		return out
	})

	res, err := bfs.BFS[int](chain, 0, bfs.WithTarget(4))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	d, ok := res.DistanceTo(4)
	require.True(t, ok)
	assert.Equal(t, 4, d)
	assert.False(t, res.Reached(6))

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path)
}

// TestBFS_MultiSource checks that every seed starts at depth zero.
func TestBFS_MultiSource(t *testing.T) {
	g := undirected([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "E"})

	res, err := bfs.BFS[string](g, "A", bfs.WithSources("E", "A"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "E": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	assert.Len(t, res.Order, 5)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "D"}, path)
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	res, err := bfs.BFS[string](adjacency{"X": nil}, "X")
	require.NoError(t, err)

	path, err := res.PathTo("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, path)

	_, err = res.PathTo("Y")
	require.ErrorIs(t, err, bfs.ErrNoPath)
	assert.True(t, strings.Contains(err.Error(), "no path"))
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := adjacency{}
	for i := 0; i < 100; i++ {
		u, v := fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1)
		g[u] = append(g[u], v)
		g[v] = append(g[v], u)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate

	_, err := bfs.BFS[string](g, "v0", bfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := undirected([2]string{"A", "B"})
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS[string](g, "A"); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		assert.NoError(t, <-errs, "concurrent run #%d", i)
	}
}
