// Package day05 validates and repairs print-queue updates against page
// ordering rules.
package day05

import (
	"context"
	"strings"

	"github.com/katalvlaran/adventofcode/dfs"
	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2024/05"

// Rules maps a page to the pages that must come after it.
type Rules map[int]map[int]bool

// Before reports whether a rule puts a ahead of b.
func (r Rules) Before(a, b int) bool { return r[a][b] }

// induced is the rule graph restricted to one update's pages, listed in
// update order so the sort is deterministic.
type induced struct {
	rules Rules
	pages []int
}

func (g induced) Neighbors(v int) []int {
	var out []int
	for _, p := range g.pages {
		if g.rules.Before(v, p) {
			out = append(out, p)
		}
	}
	return out
}

// Parse reads the rule block and the update block.
func Parse(input string) (Rules, [][]int, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 {
		return nil, nil, puzzle.Malformed(kernel, "want rules and updates, got %d blocks", len(blocks))
	}
	rules := Rules{}
	for _, line := range blocks[0] {
		a, b, ok := strings.Cut(line, "|")
		n, err := puzzle.Ints([]string{a, b})
		if !ok || err != nil {
			return nil, nil, puzzle.Malformed(kernel, "rule %q", line)
		}
		if rules[n[0]] == nil {
			rules[n[0]] = map[int]bool{}
		}
		rules[n[0]][n[1]] = true
	}
	var updates [][]int
	for _, line := range blocks[1] {
		pages, err := puzzle.Ints(strings.Split(line, ","))
		if err != nil || len(pages)%2 == 0 {
			return nil, nil, puzzle.Malformed(kernel, "update %q needs an odd number of pages", line)
		}
		updates = append(updates, pages)
	}
	return rules, updates, nil
}

// Ordered reports whether no rule is broken by the update.
func (r Rules) Ordered(pages []int) bool {
	for i := range pages {
		for j := i + 1; j < len(pages); j++ {
			if r.Before(pages[j], pages[i]) {
				return false
			}
		}
	}
	return true
}

// Reorder sorts pages topologically under the rules that mention only
// pages of this update.
func (r Rules) Reorder(ctx context.Context, pages []int) ([]int, error) {
	return dfs.TopologicalSort[int](induced{rules: r, pages: pages}, pages, dfs.WithCancelContext(ctx))
}

// Solve sums the middle pages of ordered updates, then of the repaired
// unordered ones.
func Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	rules, updates, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ordered, repaired := 0, 0
	for _, u := range updates {
		if rules.Ordered(u) {
			ordered += u[len(u)/2]
			continue
		}
		fixed, err := rules.Reorder(ctx, u)
		if err != nil {
			return puzzle.Answer{}, err
		}
		repaired += fixed[len(fixed)/2]
	}
	return puzzle.NewAnswer(ordered, repaired), nil
}
