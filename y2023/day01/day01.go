// Package day01 recovers calibration values from lines of text.
package day01

import (
	"context"
	"strings"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2023/01"

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i]. Spelled digits count only
// when spelled is set. Words may overlap, as in "eightwo".
func digitAt(s string, i int, spelled bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if spelled {
		for n, w := range words {
			if strings.HasPrefix(s[i:], w) {
				return n + 1, true
			}
		}
	}
	return 0, false
}

// Calibration joins the first and last digit of line into a two-digit number.
func Calibration(line string, spelled bool) (int, bool) {
	first, last, found := 0, 0, false
	for i := range len(line) {
		if d, ok := digitAt(line, i, spelled); ok {
			if !found {
				first, found = d, true
			}
			last = d
		}
	}
	return first*10 + last, found
}

// Sum adds the calibration values of every line.
func Sum(input string, spelled bool) (int, error) {
	total := 0
	for i, line := range puzzle.NonEmptyLines(input) {
		v, ok := Calibration(line, spelled)
		if !ok {
			return 0, puzzle.Malformed(kernel, "line %d has no digit", i+1)
		}
		total += v
	}
	return total, nil
}

// Solve returns the sums using digits only, then digits and words.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	one, err := Sum(input, false)
	if err != nil {
		return puzzle.Answer{}, err
	}
	two, err := Sum(input, true)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(one, two), nil
}
