package day09_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventofcode/puzzle"
	"github.com/katalvlaran/adventofcode/y2023/day09"
)

const sample = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
`

func TestSolve_Sample(t *testing.T) {
	ans, err := day09.Solve(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "114", ans.PartOne)
	assert.Equal(t, "2", ans.PartTwo)
}

func TestNextPrevious(t *testing.T) {
	seq := []int{10, 13, 16, 21, 30, 45}
	assert.Equal(t, 68, day09.Next(seq))
	assert.Equal(t, 5, day09.Previous(seq))
	assert.Equal(t, []int{10, 13, 16, 21, 30, 45}, seq, "input is left untouched")

	assert.Equal(t, 7, day09.Next([]int{7, 7, 7}))
	assert.Zero(t, day09.Next(nil))

	squares := []int{1, 4, 9, 16, 25}
	assert.Equal(t, 36, day09.Next(squares))
	assert.Equal(t, 0, day09.Previous(squares))
}

func TestSolve_Malformed(t *testing.T) {
	_, err := day09.Solve(context.Background(), "1 2 three\n")
	assert.ErrorIs(t, err, puzzle.ErrMalformed)
}
