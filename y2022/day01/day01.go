// Package day01 totals the calories carried by each elf.
package day01

import (
	"context"
	"slices"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2022/01"

// Solve returns the largest elf total and the sum of the three largest.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	totals, err := Totals(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(TopN(totals, 1), TopN(totals, 3)), nil
}

// Totals sums each blank-line separated block of numbers.
func Totals(input string) ([]int, error) {
	blocks := puzzle.Blocks(input)
	totals := make([]int, 0, len(blocks))
	for i, b := range blocks {
		nums, err := puzzle.Ints(b)
		if err != nil {
			return nil, puzzle.Malformed(kernel, "elf %d: %v", i+1, err)
		}
		sum := 0
		for _, n := range nums {
			sum += n
		}
		totals = append(totals, sum)
	}

	return totals, nil
}

// TopN sums the n largest totals. It does not modify totals.
func TopN(totals []int, n int) int {
	sorted := slices.Clone(totals)
	slices.Sort(sorted)
	slices.Reverse(sorted)
	sum := 0
	for i := 0; i < n && i < len(sorted); i++ {
		sum += sorted[i]
	}

	return sum
}
