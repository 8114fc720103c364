// Package day03 finds the misplaced items in rucksacks.
package day03

import (
	"context"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2022/03"

// Priority maps a-z to 1-26 and A-Z to 27-52; anything else is 0.
func Priority(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27
	}
	return 0
}

// itemSet is a bitset over priorities.
func itemSet(s string) uint64 {
	var set uint64
	for i := 0; i < len(s); i++ {
		set |= 1 << Priority(s[i])
	}
	return set
}

// lowest returns the priority of the single bit shared by the sets, or 0.
func lowest(set uint64) int {
	for p := 1; p <= 52; p++ {
		if set&(1<<p) != 0 {
			return p
		}
	}
	return 0
}

// Solve returns the priority sum of items found in both halves, and of the
// badge shared by each group of three.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	lines := puzzle.NonEmptyLines(input)
	halves, badges := 0, 0
	for i, l := range lines {
		if len(l)%2 != 0 {
			return puzzle.Answer{}, puzzle.Malformed(kernel, "line %d has odd length", i+1)
		}
		for j := 0; j < len(l); j++ {
			if Priority(l[j]) == 0 {
				return puzzle.Answer{}, puzzle.Malformed(kernel, "line %d: unexpected %q", i+1, l[j])
			}
		}
		halves += lowest(itemSet(l[:len(l)/2]) & itemSet(l[len(l)/2:]))
	}
	if len(lines)%3 != 0 {
		return puzzle.Answer{}, puzzle.Malformed(kernel, "%d rucksacks do not form groups of three", len(lines))
	}
	for i := 0; i < len(lines); i += 3 {
		badges += lowest(itemSet(lines[i]) & itemSet(lines[i+1]) & itemSet(lines[i+2]))
	}

	return puzzle.NewAnswer(halves, badges), nil
}
