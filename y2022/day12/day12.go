// Package day12 finds the fewest steps up a height map where each step may
// climb at most one level.
package day12

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/adventofcode/bfs"
	"github.com/katalvlaran/adventofcode/gridgraph"
	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2022/12"

// ErrUnreachable is returned when no route reaches the end cell.
var ErrUnreachable = errors.New("day12: end is unreachable")

// HeightMap is a parsed puzzle grid. Elevations are 0 ('a') … 25 ('z'); the
// start cell counts as 'a' and the end cell as 'z'.
type HeightMap struct {
	Grid  *gridgraph.Grid
	Start int // grid index of S
	End   int // grid index of E
	elev  []int
}

// Parse reads a rectangular grid of lowercase letters with one S and one E.
func Parse(input string) (*HeightMap, error) {
	g, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, puzzle.Malformed(kernel, "%v", err)
	}

	hm := &HeightMap{Grid: g, Start: -1, End: -1, elev: make([]int, g.Len())}
	for idx := 0; idx < g.Len(); idx++ {
		switch r := g.AtIndex(idx); {
		case r == 'S':
			if hm.Start >= 0 {
				return nil, puzzle.Malformed(kernel, "more than one S")
			}
			hm.Start, hm.elev[idx] = idx, 0
		case r == 'E':
			if hm.End >= 0 {
				return nil, puzzle.Malformed(kernel, "more than one E")
			}
			hm.End, hm.elev[idx] = idx, 'z'-'a'
		case r >= 'a' && r <= 'z':
			hm.elev[idx] = int(r - 'a')
		default:
			x, y := g.Coordinate(idx)
			return nil, puzzle.Malformed(kernel, "unexpected %q at (%d,%d)", r, x, y)
		}
	}
	if hm.Start < 0 {
		return nil, puzzle.Malformed(kernel, "missing S")
	}
	if hm.End < 0 {
		return nil, puzzle.Malformed(kernel, "missing E")
	}

	return hm, nil
}

// Elevation returns the height of the cell at grid index idx.
func (hm *HeightMap) Elevation(idx int) int { return hm.elev[idx] }

// CanStep reports whether a move from u to its neighbour v is allowed.
func (hm *HeightMap) CanStep(u, v int) bool { return hm.elev[v] <= hm.elev[u]+1 }

// Solve returns the steps from S to E and the fewest steps from any 'a'.
func Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	hm, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	one, err := hm.StepsFromStart(ctx)
	if err != nil {
		return puzzle.Answer{}, err
	}
	two, err := hm.FewestStepsFromLowest(ctx)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(one, two), nil
}

// StepsFromStart runs a BFS from S that stops as soon as E is dequeued.
func (hm *HeightMap) StepsFromStart(ctx context.Context) (int, error) {
	res, err := bfs.BFS[int](hm.Grid, hm.Start,
		bfs.WithContext[int](ctx),
		bfs.WithTarget(hm.End),
		bfs.WithFilterNeighbor(hm.CanStep),
	)
	if err != nil {
		return 0, err
	}
	steps, ok := res.DistanceTo(hm.End)
	if !ok {
		return 0, fmt.Errorf("%w from S", ErrUnreachable)
	}
	puzzle.Logger(ctx).Debug("climbed from start", zap.Int("steps", steps), zap.Int("explored", len(res.Order)))

	return steps, nil
}

// FewestStepsFromLowest is the minimum over all elevation-'a' cells of the
// distance to E. Every such cell seeds one multi-source BFS at depth 0, so
// the depth at which E is dequeued is the answer.
func (hm *HeightMap) FewestStepsFromLowest(ctx context.Context) (int, error) {
	var lows []int
	for idx, e := range hm.elev {
		if e == 0 {
			lows = append(lows, idx)
		}
	}
	res, err := bfs.BFS[int](hm.Grid, lows[0],
		bfs.WithContext[int](ctx),
		bfs.WithSources(lows[1:]...),
		bfs.WithTarget(hm.End),
		bfs.WithFilterNeighbor(hm.CanStep),
	)
	if err != nil {
		return 0, err
	}
	steps, ok := res.DistanceTo(hm.End)
	if !ok {
		return 0, fmt.Errorf("%w from any 'a' cell", ErrUnreachable)
	}
	puzzle.Logger(ctx).Debug("climbed from lowest cells",
		zap.Int("sources", len(lows)), zap.Int("steps", steps), zap.Int("explored", len(res.Order)))

	return steps, nil
}
