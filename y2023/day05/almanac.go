// Package day05 follows seeds through the almanac's chain of range maps.
package day05

import (
	"context"
	"slices"
	"strings"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2023/05"

// Rule maps [Source, Source+Length) onto Destination + (v - Source).
type Rule struct {
	Destination, Source, Length int
}

// Stage is one "x-to-y map" block. Values matching no rule pass through.
type Stage struct {
	Name  string
	Rules []Rule
}

// Almanac is the seed list and its stages in file order.
type Almanac struct {
	Seeds  []int
	Stages []Stage
}

// Parse reads the "seeds:" line followed by the map blocks.
func Parse(input string) (*Almanac, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) == 0 || !strings.HasPrefix(blocks[0][0], "seeds:") {
		return nil, puzzle.Malformed(kernel, "missing seeds line")
	}
	seeds, err := puzzle.IntFields(strings.TrimPrefix(blocks[0][0], "seeds:"))
	if err != nil {
		return nil, puzzle.Malformed(kernel, "seeds: %v", err)
	}
	a := &Almanac{Seeds: seeds}
	for _, b := range blocks[1:] {
		st := Stage{Name: strings.TrimSuffix(b[0], " map:")}
		for _, line := range b[1:] {
			n, err := puzzle.IntFields(line)
			if err != nil || len(n) != 3 {
				return nil, puzzle.Malformed(kernel, "%s: bad rule %q", st.Name, line)
			}
			st.Rules = append(st.Rules, Rule{Destination: n[0], Source: n[1], Length: n[2]})
		}
		a.Stages = append(a.Stages, st)
	}
	return a, nil
}

// Map applies the first matching rule.
func (s Stage) Map(v int) int {
	for _, r := range s.Rules {
		if v >= r.Source && v < r.Source+r.Length {
			return r.Destination + (v - r.Source)
		}
	}
	return v
}

// Location runs v through every stage.
func (a *Almanac) Location(v int) int {
	for _, s := range a.Stages {
		v = s.Map(v)
	}
	return v
}

// Interval is the half-open range [Lo, Hi).
type Interval struct{ Lo, Hi int }

// MapIntervals splits each interval at rule boundaries and maps the pieces.
func (s Stage) MapIntervals(in []Interval) []Interval {
	var out []Interval
	pending := slices.Clone(in)
	for _, r := range s.Rules {
		lo, hi := r.Source, r.Source+r.Length
		var rest []Interval
		for _, iv := range pending {
			if iv.Lo < lo {
				rest = append(rest, Interval{iv.Lo, min(iv.Hi, lo)})
			}
			if iv.Hi > hi {
				rest = append(rest, Interval{max(iv.Lo, hi), iv.Hi})
			}
			if a, b := max(iv.Lo, lo), min(iv.Hi, hi); a < b {
				shift := r.Destination - r.Source
				out = append(out, Interval{a + shift, b + shift})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

// LowestLocation returns the minimum location over the given seed ranges.
func (a *Almanac) LowestLocation(ranges []Interval) int {
	for _, s := range a.Stages {
		ranges = s.MapIntervals(ranges)
	}
	best := -1
	for _, iv := range ranges {
		if iv.Lo < iv.Hi && (best < 0 || iv.Lo < best) {
			best = iv.Lo
		}
	}
	return best
}

// Solve returns the lowest location of the listed seeds, then of the seeds
// read as (start, length) pairs.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	a, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(a.Seeds) == 0 || len(a.Seeds)%2 != 0 {
		return puzzle.Answer{}, puzzle.Malformed(kernel, "%d seeds do not form ranges", len(a.Seeds))
	}

	lowest := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		lowest = min(lowest, a.Location(s))
	}
	var ranges []Interval
	for i := 0; i < len(a.Seeds); i += 2 {
		ranges = append(ranges, Interval{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}

	return puzzle.NewAnswer(lowest, a.LowestLocation(ranges)), nil
}
