package day04_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventofcode/puzzle"
	"github.com/katalvlaran/adventofcode/y2023/day04"
)

const sample = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestSolve_Sample(t *testing.T) {
	ans, err := day04.Solve(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "13", ans.PartOne)
	assert.Equal(t, "30", ans.PartTwo)
}

func TestMatches(t *testing.T) {
	m, err := day04.Matches(sample)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 2, 1, 0, 0}, m)
}

func TestCards_WinsStopAtLastCard(t *testing.T) {
	assert.Equal(t, 2, day04.Cards([]int{0, 5}))
	assert.Equal(t, 3, day04.Cards([]int{3, 0}))
}

func TestMatches_Malformed(t *testing.T) {
	for _, in := range []string{"Card 1: 1 2 3", "Card 1: 1 x | 2"} {
		_, err := day04.Matches(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformed, in)
	}
}
