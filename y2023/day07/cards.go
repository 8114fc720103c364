// Package day07 ranks Camel Cards hands.
package day07

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2023/07"

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

// Kind is the hand type, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   int
}

// Classify returns the hand type. With jokers, every J joins the largest
// group of other cards.
func Classify(cards string, jokers bool) Kind {
	counts := map[rune]int{}
	wild := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders hands by type, then card by card.
func Compare(a, b string, jokers bool) int {
	if c := cmp.Compare(Classify(a, jokers), Classify(b, jokers)); c != 0 {
		return c
	}
	ranks := order
	if jokers {
		ranks = jokerOrder
	}
	for i := range len(a) {
		if c := cmp.Compare(strings.IndexByte(ranks, a[i]), strings.IndexByte(ranks, b[i])); c != 0 {
			return c
		}
	}
	return 0
}

// Parse reads "32T3K 765" lines.
func Parse(input string) ([]Hand, error) {
	var hands []Hand
	for i, line := range puzzle.NonEmptyLines(input) {
		f := strings.Fields(line)
		if len(f) != 2 || len(f[0]) != 5 {
			return nil, puzzle.Malformed(kernel, "line %d: %q", i+1, line)
		}
		for _, c := range f[0] {
			if !strings.ContainsRune(order, c) {
				return nil, puzzle.Malformed(kernel, "line %d: unknown card %q", i+1, c)
			}
		}
		bid, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, puzzle.Malformed(kernel, "line %d: bad bid %q", i+1, f[1])
		}
		hands = append(hands, Hand{Cards: f[0], Bid: bid})
	}
	return hands, nil
}

// Winnings sorts the hands and sums bid × rank.
func Winnings(hands []Hand, jokers bool) int {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b Hand) int { return Compare(a.Cards, b.Cards, jokers) })
	total := 0
	for i, h := range sorted {
		total += h.Bid * (i + 1)
	}
	return total
}

// Solve returns the winnings without and with jokers.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	hands, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(Winnings(hands, false), Winnings(hands, true)), nil
}
