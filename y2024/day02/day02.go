// Package day02 checks reactor reports for safe level changes.
package day02

import (
	"context"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2024/02"

// Safe reports whether levels strictly increase or strictly decrease with
// every step between 1 and 3.
func Safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	up := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if !up {
			d = -d
		}
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

// Dampened reports whether removing at most one level makes the report safe.
func Dampened(levels []int) bool {
	if Safe(levels) {
		return true
	}
	buf := make([]int, 0, len(levels))
	for skip := range levels {
		buf = buf[:0]
		buf = append(buf, levels[:skip]...)
		buf = append(buf, levels[skip+1:]...)
		if Safe(buf) {
			return true
		}
	}
	return false
}

// Solve counts safe reports, then reports safe with the dampener.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	safe, damp := 0, 0
	for i, line := range puzzle.NonEmptyLines(input) {
		levels, err := puzzle.IntFields(line)
		if err != nil {
			return puzzle.Answer{}, puzzle.Malformed(kernel, "report %d: %v", i+1, err)
		}
		if Safe(levels) {
			safe++
		}
		if Dampened(levels) {
			damp++
		}
	}
	return puzzle.NewAnswer(safe, damp), nil
}
