// Package day15 reasons about the area covered by beacon sensors.
package day15

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2022/15"

const (
	// DefaultRow is the row examined in part one.
	DefaultRow = 2_000_000
	// DefaultBound limits both coordinates of the distress beacon.
	DefaultBound = 4_000_000
)

// ErrNoGap is returned when every position in the search square is covered.
var ErrNoGap = errors.New("day15: no uncovered position")

// Point is an integer coordinate.
type Point struct{ X, Y int }

func dist(a, b Point) int { return abs(a.X-b.X) + abs(a.Y-b.Y) }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Sensor knows its closest beacon and therefore its Manhattan radius.
type Sensor struct {
	At     Point
	Beacon Point
	Radius int
}

// Covers reports whether p is no farther from s than its beacon.
func (s Sensor) Covers(p Point) bool { return dist(s.At, p) <= s.Radius }

// Parse reads "Sensor at x=2, y=18: closest beacon is at x=-2, y=15" lines.
func Parse(input string) ([]Sensor, error) {
	var sensors []Sensor
	for i, line := range puzzle.NonEmptyLines(input) {
		var s Sensor
		_, err := fmt.Sscanf(line, "Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d",
			&s.At.X, &s.At.Y, &s.Beacon.X, &s.Beacon.Y)
		if err != nil {
			return nil, puzzle.Malformed(kernel, "line %d: %v", i+1, err)
		}
		s.Radius = dist(s.At, s.Beacon)
		sensors = append(sensors, s)
	}
	return sensors, nil
}

type span struct{ lo, hi int }

// rowSpans returns the merged, sorted intervals covered on row y.
func rowSpans(sensors []Sensor, y int) []span {
	var spans []span
	for _, s := range sensors {
		w := s.Radius - abs(s.At.Y-y)
		if w >= 0 {
			spans = append(spans, span{s.At.X - w, s.At.X + w})
		}
	}
	slices.SortFunc(spans, func(a, b span) int { return a.lo - b.lo })

	var merged []span
	for _, sp := range spans {
		if n := len(merged); n > 0 && sp.lo <= merged[n-1].hi+1 {
			merged[n-1].hi = max(merged[n-1].hi, sp.hi)
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// Excluded counts positions on row y where no beacon can be.
func Excluded(sensors []Sensor, y int) int {
	count := 0
	spans := rowSpans(sensors, y)
	for _, sp := range spans {
		count += sp.hi - sp.lo + 1
	}
	beacons := map[Point]bool{}
	for _, s := range sensors {
		if s.Beacon.Y == y && !beacons[s.Beacon] {
			beacons[s.Beacon] = true
			for _, sp := range spans {
				if s.Beacon.X >= sp.lo && s.Beacon.X <= sp.hi {
					count--
					break
				}
			}
		}
	}
	return count
}

// FindGap returns the only point in [0,bound]² not covered by any sensor.
// Such a point lies just outside some sensor's radius, so only those
// perimeters are scanned.
func FindGap(sensors []Sensor, bound int) (Point, error) {
	covered := func(p Point) bool {
		for _, s := range sensors {
			if s.Covers(p) {
				return true
			}
		}
		return false
	}
	for _, s := range sensors {
		r := s.Radius + 1
		for dx := 0; dx <= r; dx++ {
			dy := r - dx
			for _, p := range [4]Point{
				{s.At.X + dx, s.At.Y + dy}, {s.At.X + dx, s.At.Y - dy},
				{s.At.X - dx, s.At.Y + dy}, {s.At.X - dx, s.At.Y - dy},
			} {
				if p.X < 0 || p.Y < 0 || p.X > bound || p.Y > bound {
					continue
				}
				if !covered(p) {
					return p, nil
				}
			}
		}
	}
	return Point{}, fmt.Errorf("%w within %d", ErrNoGap, bound)
}

// TuningFrequency is x*4000000 + y.
func TuningFrequency(p Point) int { return p.X*4_000_000 + p.Y }

// Analyze solves both parts for an arbitrary row and bound.
func Analyze(ctx context.Context, input string, row, bound int) (puzzle.Answer, error) {
	sensors, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	gap, err := FindGap(sensors, bound)
	if err != nil {
		return puzzle.Answer{}, err
	}
	puzzle.Logger(ctx).Debug("distress beacon located", zap.Int("x", gap.X), zap.Int("y", gap.Y))

	return puzzle.NewAnswer(Excluded(sensors, row), TuningFrequency(gap)), nil
}

// Solve uses the puzzle's row and bound.
func Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	return Analyze(ctx, input, DefaultRow, DefaultBound)
}
