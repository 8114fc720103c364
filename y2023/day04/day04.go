// Package day04 scores scratchcards.
package day04

import (
	"context"
	"strings"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2023/04"

// Matches returns, per card, how many of its numbers are winning numbers.
func Matches(input string) ([]int, error) {
	var out []int
	for i, line := range puzzle.NonEmptyLines(input) {
		_, body, ok := strings.Cut(line, ":")
		winning, have, ok2 := strings.Cut(body, "|")
		if !ok || !ok2 {
			return nil, puzzle.Malformed(kernel, "card %d: %q", i+1, line)
		}
		win, err := puzzle.IntFields(winning)
		if err != nil {
			return nil, puzzle.Malformed(kernel, "card %d: %v", i+1, err)
		}
		nums, err := puzzle.IntFields(have)
		if err != nil {
			return nil, puzzle.Malformed(kernel, "card %d: %v", i+1, err)
		}
		set := make(map[int]bool, len(win))
		for _, w := range win {
			set[w] = true
		}
		n := 0
		for _, v := range nums {
			if set[v] {
				n++
			}
		}
		out = append(out, n)
	}
	return out, nil
}

// Points doubles per match after the first.
func Points(matches []int) int {
	total := 0
	for _, m := range matches {
		if m > 0 {
			total += 1 << (m - 1)
		}
	}
	return total
}

// Cards counts the cards held once every won copy has been processed. A
// win never extends past the last card.
func Cards(matches []int) int {
	copies := make([]int, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, m := range matches {
		total += copies[i]
		for j := i + 1; j <= i+m && j < len(matches); j++ {
			copies[j] += copies[i]
		}
	}
	return total
}

// Solve returns the total points and total cards.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	m, err := Matches(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(Points(m), Cards(m)), nil
}
