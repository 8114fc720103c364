// Package day08 scores tree visibility in a height grid.
package day08

import (
	"context"

	"github.com/katalvlaran/adventofcode/gridgraph"
	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2022/08"

var directions = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Forest is a grid of tree heights 0..9.
type Forest struct {
	*gridgraph.Grid
}

// Parse reads a rectangular grid of digits.
func Parse(input string) (*Forest, error) {
	g, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, puzzle.Malformed(kernel, "%v", err)
	}
	for y, row := range g.Cells {
		for x, r := range row {
			if r < '0' || r > '9' {
				return nil, puzzle.Malformed(kernel, "unexpected %q at (%d,%d)", r, x, y)
			}
		}
	}
	return &Forest{Grid: g}, nil
}

// look walks from (x,y) in direction d and returns the number of trees
// seen and whether the edge was reached without being blocked.
func (f *Forest) look(x, y int, d [2]int) (seen int, clear bool) {
	h := f.Cells[y][x]
	for nx, ny := x+d[0], y+d[1]; f.InBounds(nx, ny); nx, ny = nx+d[0], ny+d[1] {
		seen++
		if f.Cells[ny][nx] >= h {
			return seen, false
		}
	}
	return seen, true
}

// Visible reports whether the tree at (x,y) can be seen from outside.
func (f *Forest) Visible(x, y int) bool {
	for _, d := range directions {
		if _, clear := f.look(x, y, d); clear {
			return true
		}
	}
	return false
}

// ScenicScore multiplies the viewing distances in the four directions.
func (f *Forest) ScenicScore(x, y int) int {
	score := 1
	for _, d := range directions {
		n, _ := f.look(x, y, d)
		score *= n
	}
	return score
}

// Solve counts visible trees and finds the best scenic score.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	f, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	visible, best := 0, 0
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.Visible(x, y) {
				visible++
			}
			best = max(best, f.ScenicScore(x, y))
		}
	}
	return puzzle.NewAnswer(visible, best), nil
}
