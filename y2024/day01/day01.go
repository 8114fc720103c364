// Package day01 compares the two historians' location lists.
package day01

import (
	"context"
	"slices"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2024/01"

// Parse splits the two columns.
func Parse(input string) (left, right []int, err error) {
	for i, line := range puzzle.NonEmptyLines(input) {
		n, err := puzzle.IntFields(line)
		if err != nil || len(n) != 2 {
			return nil, nil, puzzle.Malformed(kernel, "line %d: %q", i+1, line)
		}
		left = append(left, n[0])
		right = append(right, n[1])
	}
	return left, right, nil
}

// Distance pairs the lists in sorted order and sums the gaps.
func Distance(left, right []int) int {
	l, r := slices.Clone(left), slices.Clone(right)
	slices.Sort(l)
	slices.Sort(r)
	total := 0
	for i := range l {
		d := l[i] - r[i]
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total
}

// Similarity weights each left value by its count in right.
func Similarity(left, right []int) int {
	counts := map[int]int{}
	for _, v := range right {
		counts[v]++
	}
	total := 0
	for _, v := range left {
		total += v * counts[v]
	}
	return total
}

// Solve returns the total distance and the similarity score.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	l, r, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(Distance(l, r), Similarity(l, r)), nil
}
