package dfs_test

import (
	"testing"

	"github.com/katalvlaran/adventofcode/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a linear chain of 10,001 vertices.
func BenchmarkDFS_Chain10000(b *testing.B) {
	const n = 10000
	chain := neighborFunc[int](func(v int) []int {
		if v < n {
			return []int{v + 1}
		}
		return nil
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS[int](chain, 0)
	}
}

// BenchmarkTopologicalSort_BinaryTree sorts a complete binary tree of 1023 vertices.
func BenchmarkTopologicalSort_BinaryTree(b *testing.B) {
	const n = 1023
	roots := make([]int, n)
	for i := range roots {
		roots[i] = i + 1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort[int](binaryTree(n), roots)
	}
}
