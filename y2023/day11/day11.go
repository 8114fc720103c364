// Package day11 measures galaxy distances in an expanding universe.
package day11

import (
	"context"
	"slices"

	"github.com/katalvlaran/adventofcode/gridgraph"
	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2023/11"

// Galaxies returns the '#' positions of the image.
func Galaxies(input string) ([]gridgraph.Cell, *gridgraph.Grid, error) {
	g, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, nil, puzzle.Malformed(kernel, "%v", err)
	}
	for y, row := range g.Cells {
		for x, r := range row {
			if r != '.' && r != '#' {
				return nil, nil, puzzle.Malformed(kernel, "unexpected %q at (%d,%d)", r, x, y)
			}
		}
	}
	return g.FindAll('#'), g, nil
}

// axisSum adds |a-b| over all pairs of coords after each empty line of the
// axis has been widened to factor lines.
func axisSum(coords []int, size, factor int) int {
	occupied := make([]bool, size)
	for _, c := range coords {
		occupied[c] = true
	}
	// shifted[i] is the expanded position of line i
	shifted := make([]int, size)
	pos := 0
	for i := range size {
		shifted[i] = pos
		if occupied[i] {
			pos++
		} else {
			pos += factor
		}
	}

	vals := make([]int, len(coords))
	for i, c := range coords {
		vals[i] = shifted[c]
	}
	slices.Sort(vals)
	// sorted, each value is subtracted once per earlier value
	sum, prefix := 0, 0
	for i, v := range vals {
		sum += v*i - prefix
		prefix += v
	}
	return sum
}

// DistanceSum is the total Manhattan distance over all galaxy pairs.
func DistanceSum(galaxies []gridgraph.Cell, width, height, factor int) int {
	xs := make([]int, len(galaxies))
	ys := make([]int, len(galaxies))
	for i, c := range galaxies {
		xs[i], ys[i] = c.X, c.Y
	}
	return axisSum(xs, width, factor) + axisSum(ys, height, factor)
}

// Solve expands empty rows and columns by 2 and by 1,000,000.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	gal, g, err := Galaxies(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(
		DistanceSum(gal, g.Width, g.Height, 2),
		DistanceSum(gal, g.Width, g.Height, 1_000_000),
	), nil
}
