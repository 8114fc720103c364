// Package day08 walks the desert network's left/right instructions.
package day08

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2023/08"

// ErrNoExit is returned when a walk never reaches an exit node.
var ErrNoExit = errors.New("day08: walk never reaches an exit")

// Network holds the instruction string and each node's two successors.
type Network struct {
	Steps string
	Nodes map[string][2]string
}

// Parse reads the instructions and "AAA = (BBB, CCC)" lines.
func Parse(input string) (*Network, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, puzzle.Malformed(kernel, "want instructions then nodes")
	}
	n := &Network{Steps: strings.TrimSpace(blocks[0][0]), Nodes: map[string][2]string{}}
	if strings.Trim(n.Steps, "LR") != "" {
		return nil, puzzle.Malformed(kernel, "instructions %q", n.Steps)
	}
	for _, line := range blocks[1] {
		name, pair, ok := strings.Cut(line, " = ")
		l, r, ok2 := strings.Cut(strings.Trim(pair, "()"), ", ")
		if !ok || !ok2 {
			return nil, puzzle.Malformed(kernel, "node %q", line)
		}
		n.Nodes[name] = [2]string{l, r}
	}
	for name, next := range n.Nodes {
		for _, s := range next {
			if _, ok := n.Nodes[s]; !ok {
				return nil, puzzle.Malformed(kernel, "%s points at unknown node %s", name, s)
			}
		}
	}
	return n, nil
}

// Walk counts steps from start until done holds. The state (node, step
// index) repeats after len(Nodes)*len(Steps) moves, so longer walks fail.
func (n *Network) Walk(ctx context.Context, start string, done func(string) bool) (int, error) {
	limit := len(n.Nodes) * len(n.Steps)
	cur := start
	for i := 0; i <= limit; i++ {
		if done(cur) {
			return i, nil
		}
		if i%1024 == 0 && ctx.Err() != nil {
			return 0, ctx.Err()
		}
		side := 0
		if n.Steps[i%len(n.Steps)] == 'R' {
			side = 1
		}
		cur = n.Nodes[cur][side]
	}
	return 0, fmt.Errorf("%w from %s", ErrNoExit, start)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM is the least common multiple of ns.
func LCM(ns ...int) int {
	l := 1
	for _, n := range ns {
		l = l / gcd(l, n) * n
	}
	return l
}

// Ghosts walks every node ending in A to its first node ending in Z and
// combines the cycle lengths. Each ghost's Z recurs at the same period.
func (n *Network) Ghosts(ctx context.Context) (int, error) {
	var starts []string
	for name := range n.Nodes {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	if len(starts) == 0 {
		return 0, fmt.Errorf("%w: no node ends in A", ErrNoExit)
	}
	slices.Sort(starts)
	lengths := make([]int, 0, len(starts))
	for _, s := range starts {
		k, err := n.Walk(ctx, s, func(v string) bool { return strings.HasSuffix(v, "Z") })
		if err != nil {
			return 0, err
		}
		lengths = append(lengths, k)
	}
	return LCM(lengths...), nil
}

// Solve returns the AAA→ZZZ step count and the ghosts' combined count. A
// network without AAA reports part one as n/a.
func Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	n, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var one any = "n/a"
	if _, ok := n.Nodes["AAA"]; ok {
		if one, err = n.Walk(ctx, "AAA", func(v string) bool { return v == "ZZZ" }); err != nil {
			return puzzle.Answer{}, err
		}
	}
	two, err := n.Ghosts(ctx)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(one, two), nil
}
