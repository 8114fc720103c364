// Package day06 counts the ways to beat each boat race record.
package day06

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2023/06"

// Race is a duration and the distance to beat.
type Race struct {
	Time, Record int
}

// Ways counts hold times h in [0, Time] with h*(Time-h) > Record. The roots
// of the quadratic give a first guess that is then corrected by stepping.
func (r Race) Ways() int {
	t, d := float64(r.Time), float64(r.Record)
	disc := t*t - 4*d
	if disc < 0 {
		return 0
	}
	lo := int(math.Floor((t - math.Sqrt(disc)) / 2))
	beats := func(h int) bool { return h*(r.Time-h) > r.Record }
	for lo > 0 && beats(lo-1) {
		lo--
	}
	for lo <= r.Time/2 && !beats(lo) {
		lo++
	}
	if lo > r.Time/2 {
		return 0
	}
	// the winning holds are symmetric around Time/2
	return r.Time - 2*lo + 1
}

func parseRow(line, label string) ([]string, error) {
	rest, ok := strings.CutPrefix(line, label)
	if !ok {
		return nil, puzzle.Malformed(kernel, "expected %q row", label)
	}
	return strings.Fields(rest), nil
}

// Parse returns the separate races and the single race formed by ignoring
// the spaces between digits.
func Parse(input string) ([]Race, Race, error) {
	lines := puzzle.NonEmptyLines(input)
	if len(lines) != 2 {
		return nil, Race{}, puzzle.Malformed(kernel, "want 2 lines, got %d", len(lines))
	}
	times, err := parseRow(lines[0], "Time:")
	if err != nil {
		return nil, Race{}, err
	}
	records, err := parseRow(lines[1], "Distance:")
	if err != nil {
		return nil, Race{}, err
	}
	if len(times) != len(records) {
		return nil, Race{}, puzzle.Malformed(kernel, "%d times for %d records", len(times), len(records))
	}
	t, err := puzzle.Ints(times)
	if err != nil {
		return nil, Race{}, puzzle.Malformed(kernel, "%v", err)
	}
	d, err := puzzle.Ints(records)
	if err != nil {
		return nil, Race{}, puzzle.Malformed(kernel, "%v", err)
	}
	races := make([]Race, len(t))
	for i := range t {
		races[i] = Race{Time: t[i], Record: d[i]}
	}
	bigT, _ := strconv.Atoi(strings.Join(times, ""))
	bigD, _ := strconv.Atoi(strings.Join(records, ""))

	return races, Race{Time: bigT, Record: bigD}, nil
}

// Solve multiplies the win counts of the races, then counts the long race.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	races, long, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	product := 1
	for _, r := range races {
		product *= r.Ways()
	}
	return puzzle.NewAnswer(product, long.Ways()), nil
}
