package day15_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventofcode/puzzle"
	"github.com/katalvlaran/adventofcode/y2022/day15"
)

const sample = `Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3
`

func TestAnalyze_Sample(t *testing.T) {
	ans, err := day15.Analyze(context.Background(), sample, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, "26", ans.PartOne)
	assert.Equal(t, "56000011", ans.PartTwo)
}

func TestFindGap_IsUncovered(t *testing.T) {
	sensors, err := day15.Parse(sample)
	require.NoError(t, err)
	gap, err := day15.FindGap(sensors, 20)
	require.NoError(t, err)
	assert.Equal(t, day15.Point{X: 14, Y: 11}, gap)
	for _, s := range sensors {
		assert.False(t, s.Covers(gap))
	}
}

func TestExcluded_MatchesBruteForce(t *testing.T) {
	sensors, err := day15.Parse(sample)
	require.NoError(t, err)
	beacons := map[day15.Point]bool{}
	for _, s := range sensors {
		beacons[s.Beacon] = true
	}
	for _, y := range []int{-3, 0, 9, 10, 11, 22} {
		want := 0
		for x := -20; x <= 45; x++ {
			p := day15.Point{X: x, Y: y}
			if beacons[p] {
				continue
			}
			for _, s := range sensors {
				if s.Covers(p) {
					want++
					break
				}
			}
		}
		assert.Equal(t, want, day15.Excluded(sensors, y), "row %d", y)
	}
}

func TestFindGap_NoGap(t *testing.T) {
	_, err := day15.Analyze(context.Background(), "Sensor at x=5, y=5: closest beacon is at x=5, y=15\n", 5, 10)
	assert.ErrorIs(t, err, day15.ErrNoGap)
}

func TestParse_Malformed(t *testing.T) {
	_, err := day15.Parse("Sensor at x=2, y=18: beacon elsewhere\n")
	assert.ErrorIs(t, err, puzzle.ErrMalformed)
}
