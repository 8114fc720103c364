package day08_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventofcode/puzzle"
	"github.com/katalvlaran/adventofcode/y2022/day08"
)

const sample = `30373
25512
65332
33549
35390
`

func TestSolve_Sample(t *testing.T) {
	ans, err := day08.Solve(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "21", ans.PartOne)
	assert.Equal(t, "8", ans.PartTwo)
}

func TestForest_Queries(t *testing.T) {
	f, err := day08.Parse(sample)
	require.NoError(t, err)

	assert.True(t, f.Visible(0, 0), "edges are always visible")
	assert.True(t, f.Visible(1, 1))
	assert.False(t, f.Visible(3, 1))
	assert.Equal(t, 4, f.ScenicScore(2, 1))
	assert.Equal(t, 8, f.ScenicScore(2, 3))
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"12\n3\n", "1a\n22\n", ""} {
		_, err := day08.Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformed, in)
	}
}
