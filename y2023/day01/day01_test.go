package day01_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventofcode/puzzle"
	"github.com/katalvlaran/adventofcode/y2023/day01"
)

func TestSum_Digits(t *testing.T) {
	got, err := day01.Sum("1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n", false)
	require.NoError(t, err)
	assert.Equal(t, 142, got)
}

func TestSum_SpelledDigits(t *testing.T) {
	const sample = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`
	got, err := day01.Sum(sample, true)
	require.NoError(t, err)
	assert.Equal(t, 281, got)
}

func TestCalibration_OverlappingWords(t *testing.T) {
	v, ok := day01.Calibration("eightwo", true)
	require.True(t, ok)
	assert.Equal(t, 82, v)

	_, ok = day01.Calibration("eightwo", false)
	assert.False(t, ok)
}

func TestSum_NoDigit(t *testing.T) {
	_, err := day01.Sum("abc\n", false)
	assert.ErrorIs(t, err, puzzle.ErrMalformed)
}
