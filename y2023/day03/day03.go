// Package day03 reads part numbers off an engine schematic.
package day03

import (
	"context"

	"github.com/katalvlaran/adventofcode/gridgraph"
	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2023/03"

// Number is a run of digits on one row and the symbols touching it.
type Number struct {
	Value   int
	Symbols []int // grid indices of adjacent symbols, each listed once
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSymbol(r rune) bool { return r != '.' && !isDigit(r) }

// Numbers scans the schematic row by row.
func Numbers(g *gridgraph.Grid) []Number {
	var out []Number
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; {
			if !isDigit(g.Cells[y][x]) {
				x++
				continue
			}
			n := Number{}
			seen := map[int]bool{}
			for ; x < g.Width && isDigit(g.Cells[y][x]); x++ {
				n.Value = n.Value*10 + int(g.Cells[y][x]-'0')
				for _, nb := range g.Neighbors(g.Index(x, y)) {
					if isSymbol(g.AtIndex(nb)) && !seen[nb] {
						seen[nb] = true
						n.Symbols = append(n.Symbols, nb)
					}
				}
			}
			out = append(out, n)
		}
	}
	return out
}

// Solve sums numbers adjacent to a symbol and the ratios of gears, which
// are '*' symbols touching exactly two numbers.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	g, err := gridgraph.Parse(input, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	if err != nil {
		return puzzle.Answer{}, puzzle.Malformed(kernel, "%v", err)
	}

	parts := 0
	touching := map[int][]int{}
	for _, n := range Numbers(g) {
		if len(n.Symbols) > 0 {
			parts += n.Value
		}
		for _, s := range n.Symbols {
			if g.AtIndex(s) == '*' {
				touching[s] = append(touching[s], n.Value)
			}
		}
	}
	ratios := 0
	for _, nums := range touching {
		if len(nums) == 2 {
			ratios += nums[0] * nums[1]
		}
	}

	return puzzle.NewAnswer(parts, ratios), nil
}
