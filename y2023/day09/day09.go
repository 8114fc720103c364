// Package day09 extrapolates sequences by repeated differences.
package day09

import (
	"context"
	"slices"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2023/09"

// Next predicts the value after seq. It sums the last element of every
// difference row until a row is all zeros.
func Next(seq []int) int {
	row := slices.Clone(seq)
	next := 0
	for len(row) > 0 && slices.ContainsFunc(row, func(v int) bool { return v != 0 }) {
		next += row[len(row)-1]
		for i := 0; i+1 < len(row); i++ {
			row[i] = row[i+1] - row[i]
		}
		row = row[:len(row)-1]
	}
	return next
}

// Previous predicts the value before seq.
func Previous(seq []int) int {
	rev := slices.Clone(seq)
	slices.Reverse(rev)
	return Next(rev)
}

// Solve sums the forward and backward predictions.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	fwd, back := 0, 0
	for i, line := range puzzle.NonEmptyLines(input) {
		seq, err := puzzle.IntFields(line)
		if err != nil {
			return puzzle.Answer{}, puzzle.Malformed(kernel, "line %d: %v", i+1, err)
		}
		fwd += Next(seq)
		back += Previous(seq)
	}
	return puzzle.NewAnswer(fwd, back), nil
}
