package day02_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventofcode/puzzle"
	"github.com/katalvlaran/adventofcode/y2022/day02"
)

func TestSolve_Sample(t *testing.T) {
	ans, err := day02.Solve(context.Background(), "A Y\nB X\nC Z\n")
	require.NoError(t, err)
	assert.Equal(t, "15", ans.PartOne)
	assert.Equal(t, "12", ans.PartTwo)
}

func TestScore_AllCombinations(t *testing.T) {
	// shape score + outcome score for every pairing, part one reading
	want := map[string]int{
		"A X": 4, "A Y": 8, "A Z": 3,
		"B X": 1, "B Y": 5, "B Z": 9,
		"C X": 7, "C Y": 2, "C Z": 6,
	}
	for line, score := range want {
		rounds, err := day02.Parse(line)
		require.NoError(t, err)
		assert.Equal(t, score, day02.Score(rounds, false), line)
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"A", "D X", "A W", "AX Y"} {
		_, err := day02.Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformed, in)
	}
}
