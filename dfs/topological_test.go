package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventofcode/dfs"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// TestTopo_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort[string](nil, nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestTopo_EmptyGraph covers a graph with no vertices.
func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalSort[string](digraph{}, nil)
	assert.NoError(t, err)
	assert.Empty(t, order)
}

// TestTopo_NoEdges checks that isolated vertices all appear.
func TestTopo_NoEdges(t *testing.T) {
	g := digraph{"A": nil, "B": nil, "C": nil}
	order, err := dfs.TopologicalSort[string](g, []string{"A", "B", "C"})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, order)
}

// TestTopo_SimpleChain verifies linear chain A→B→C yields [A,B,C] whatever
// the root order.
func TestTopo_SimpleChain(t *testing.T) {
	g := digraph{"A": {"B"}, "B": {"C"}, "C": nil}
	order, err := dfs.TopologicalSort[string](g, []string{"C", "B", "A"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

// TestTopo_DiamondRespectsEdges checks every edge u→v has u before v.
func TestTopo_DiamondRespectsEdges(t *testing.T) {
	g := digraph{"A": {"B", "C"}, "B": {"D"}, "C": {"D"}, "D": {"E"}, "E": nil}
	order, err := dfs.TopologicalSort[string](g, []string{"E", "D", "C", "B", "A"})
	require.NoError(t, err)
	require.Len(t, order, 5)
	for u, vs := range g {
		for _, v := range vs {
			assert.Less(t, position(order, u), position(order, v), "%s must precede %s", u, v)
		}
	}
}

// TestTopo_Cycle ensures a back edge is reported.
func TestTopo_Cycle(t *testing.T) {
	g := digraph{"A": {"B"}, "B": {"C"}, "C": {"A"}}
	order, err := dfs.TopologicalSort[string](g, []string{"A", "B", "C"})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopo_SelfLoop is the smallest cycle.
func TestTopo_SelfLoop(t *testing.T) {
	g := digraph{"A": {"A"}}
	_, err := dfs.TopologicalSort[string](g, []string{"A"})
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopo_Cancellation verifies the context is honored.
func TestTopo_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort[string](buildChain(3), []string{"N0"}, dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
