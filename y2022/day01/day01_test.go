package day01_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventofcode/puzzle"
	"github.com/katalvlaran/adventofcode/y2022/day01"
)

const sample = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestSolve_Sample(t *testing.T) {
	ans, err := day01.Solve(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{PartOne: "24000", PartTwo: "45000"}, ans)
}

func TestTopN_FewerElvesThanN(t *testing.T) {
	assert.Equal(t, 7, day01.TopN([]int{3, 4}, 3))
	assert.Zero(t, day01.TopN(nil, 1))
}

func TestTotals_Malformed(t *testing.T) {
	_, err := day01.Totals("100\nlots\n")
	assert.ErrorIs(t, err, puzzle.ErrMalformed)
}
