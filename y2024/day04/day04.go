// Package day04 is a word search for XMAS.
package day04

import (
	"context"

	"github.com/katalvlaran/adventofcode/gridgraph"
	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2024/04"

const word = "XMAS"

// Puzzle is the letter grid. It is built with Conn8 so its neighbour
// offsets double as the eight search directions.
type Puzzle struct {
	*gridgraph.Grid
}

// Parse reads a rectangular letter grid.
func Parse(input string) (*Puzzle, error) {
	g, err := gridgraph.Parse(input, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	if err != nil {
		return nil, puzzle.Malformed(kernel, "%v", err)
	}
	return &Puzzle{Grid: g}, nil
}

func (p *Puzzle) spells(x, y, dx, dy int, w string) bool {
	for i, c := range w {
		r, ok := p.At(x+i*dx, y+i*dy)
		if !ok || r != c {
			return false
		}
	}
	return true
}

// CountWord counts XMAS in every direction, overlaps included.
func (p *Puzzle) CountWord() int {
	n := 0
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			for _, d := range p.NeighborOffsets() {
				if p.spells(x, y, d[0], d[1], word) {
					n++
				}
			}
		}
	}
	return n
}

// CountCross counts A cells whose two diagonals both read MAS or SAM.
func (p *Puzzle) CountCross() int {
	n := 0
	for y := 1; y+1 < p.Height; y++ {
		for x := 1; x+1 < p.Width; x++ {
			if p.Cells[y][x] != 'A' {
				continue
			}
			diag := p.spells(x-1, y-1, 1, 1, "MAS") || p.spells(x-1, y-1, 1, 1, "SAM")
			anti := p.spells(x+1, y-1, -1, 1, "MAS") || p.spells(x+1, y-1, -1, 1, "SAM")
			if diag && anti {
				n++
			}
		}
	}
	return n
}

// Solve returns the XMAS count and the X-MAS count.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	p, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(p.CountWord(), p.CountCross()), nil
}
