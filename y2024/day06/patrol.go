// Package day06 simulates the lab guard's patrol.
package day06

import (
	"context"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/adventofcode/gridgraph"
	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2024/06"

// headings in turning order: up, right, down, left
var headings = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Lab is the floor plan with the guard's starting cell. The guard always
// starts facing up.
type Lab struct {
	*gridgraph.Grid
	Start int
}

// Parse reads '.', '#' and exactly one '^'.
func Parse(input string) (*Lab, error) {
	g, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, puzzle.Malformed(kernel, "%v", err)
	}
	guards := g.FindAll('^')
	if len(guards) != 1 {
		return nil, puzzle.Malformed(kernel, "want one guard, found %d", len(guards))
	}
	for y, row := range g.Cells {
		for x, r := range row {
			if r != '.' && r != '#' && r != '^' {
				return nil, puzzle.Malformed(kernel, "unexpected %q at (%d,%d)", r, x, y)
			}
		}
	}
	return &Lab{Grid: g, Start: g.Index(guards[0].X, guards[0].Y)}, nil
}

// Walk follows the guard, turning right at obstacles, with an optional
// extra obstacle at index block (-1 for none). It returns the visited
// cells in first-visit order and whether the guard ends up in a loop.
func (l *Lab) Walk(block int) (visited []int, loops bool) {
	seen := make([]uint8, l.Len()) // bit h set once the cell was left heading h
	x, y := l.Coordinate(l.Start)
	h := 0
	for {
		idx := l.Index(x, y)
		if seen[idx] == 0 {
			visited = append(visited, idx)
		}
		if seen[idx]&(1<<h) != 0 {
			return visited, true
		}
		seen[idx] |= 1 << h

		nx, ny := x+headings[h][0], y+headings[h][1]
		r, ok := l.At(nx, ny)
		if !ok {
			return visited, false
		}
		if r == '#' || l.Index(nx, ny) == block {
			h = (h + 1) % 4
			continue
		}
		x, y = nx, ny
	}
}

// Traps counts the cells where one new obstacle makes the guard loop. Only
// cells on the unobstructed route can change it. Candidates are checked
// concurrently, at most workers at a time; workers <= 0 means NumCPU.
func (l *Lab) Traps(ctx context.Context, route []int, workers int) (int, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	var count atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, idx := range route {
		if idx == l.Start {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, loops := l.Walk(idx); loops {
				count.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(count.Load()), nil
}

// Solve counts the distinct cells visited and the trapping obstacle cells.
func Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	l, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	route, loops := l.Walk(-1)
	if loops {
		return puzzle.Answer{}, puzzle.Malformed(kernel, "guard never leaves the lab")
	}
	traps, err := l.Traps(ctx, route, 0)
	if err != nil {
		return puzzle.Answer{}, err
	}
	puzzle.Logger(ctx).Debug("patrol simulated", zap.Int("route", len(route)), zap.Int("traps", traps))

	return puzzle.NewAnswer(len(route), traps), nil
}
