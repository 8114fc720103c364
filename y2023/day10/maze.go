// Package day10 traces the pipe loop through S and counts the tiles it
// encloses.
package day10

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/adventofcode/gridgraph"
	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2023/10"

// ErrInvalidMaze is returned when S is missing, its neighbours do not
// single out a tile, or the loop does not close.
var ErrInvalidMaze = errors.New("day10: invalid maze")

// Direction bits of a tile's connectors.
const (
	North uint8 = 1 << iota
	East
	South
	West
)

// step is the (dx, dy) move for each single-bit direction.
var step = map[uint8][2]int{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

func opposite(d uint8) uint8 {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	}
	return East
}

// connectors maps each tile to the directions it opens towards.
var connectors = map[rune]uint8{
	'|': North | South,
	'-': East | West,
	'L': North | East,
	'J': North | West,
	'7': South | West,
	'F': South | East,
	'.': 0,
}

// tileFor is the inverse of connectors for two-way tiles.
func tileFor(mask uint8) (rune, bool) {
	for r, m := range connectors {
		if m == mask && m != 0 {
			return r, true
		}
	}
	return 0, false
}

// Maze is a parsed pipe grid with S resolved to its tile.
type Maze struct {
	Grid      *gridgraph.Grid
	StartX    int
	StartY    int
	StartTile rune
}

// Parse reads the grid, locates S and infers the tile under it from the
// neighbours that connect back to it.
func Parse(input string) (*Maze, error) {
	g, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, puzzle.Malformed(kernel, "%v", err))
	}

	m := &Maze{Grid: g, StartX: -1}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			r := g.Cells[y][x]
			if r == 'S' {
				if m.StartX >= 0 {
					return nil, fmt.Errorf("%w: more than one S", ErrInvalidMaze)
				}
				m.StartX, m.StartY = x, y
				continue
			}
			if _, ok := connectors[r]; !ok {
				return nil, fmt.Errorf("%w: %w", ErrInvalidMaze,
					puzzle.Malformed(kernel, "unexpected %q at (%d,%d)", r, x, y))
			}
		}
	}
	if m.StartX < 0 {
		return nil, fmt.Errorf("%w: no S", ErrInvalidMaze)
	}

	var mask uint8
	for _, d := range []uint8{North, East, South, West} {
		if m.connects(m.StartX, m.StartY, d) {
			mask |= d
		}
	}
	tile, ok := tileFor(mask)
	if !ok {
		return nil, fmt.Errorf("%w: S at (%d,%d) does not have exactly two connecting neighbours",
			ErrInvalidMaze, m.StartX, m.StartY)
	}
	m.StartTile = tile

	return m, nil
}

// connects reports whether the neighbour of (x,y) in direction d opens
// back towards (x,y).
func (m *Maze) connects(x, y int, d uint8) bool {
	s := step[d]
	r, ok := m.Grid.At(x+s[0], y+s[1])
	if !ok {
		return false
	}
	return connectors[r]&opposite(d) != 0
}

// Tile returns the tile at (x,y) with S replaced by its inferred tile.
func (m *Maze) Tile(x, y int) rune {
	if x == m.StartX && y == m.StartY {
		return m.StartTile
	}
	r, _ := m.Grid.At(x, y)
	return r
}

// Loop walks the pipe from S until it returns to S and returns the grid
// indices of the loop in walk order, S first.
func (m *Maze) Loop() ([]int, error) {
	g := m.Grid
	start := g.Index(m.StartX, m.StartY)

	// leave S through its lowest connector bit
	startMask := connectors[m.StartTile]
	dir := startMask & -startMask

	loop := []int{start}
	x, y := m.StartX, m.StartY
	for len(loop) <= g.Len() {
		s := step[dir]
		x, y = x+s[0], y+s[1]
		if x == m.StartX && y == m.StartY {
			return loop, nil
		}
		if !g.InBounds(x, y) {
			return nil, fmt.Errorf("%w: loop leaves the grid", ErrInvalidMaze)
		}
		mask := connectors[m.Tile(x, y)]
		back := opposite(dir)
		if mask&back == 0 {
			return nil, fmt.Errorf("%w: pipe at (%d,%d) is not connected", ErrInvalidMaze, x, y)
		}
		loop = append(loop, g.Index(x, y))
		dir = mask &^ back
	}

	return nil, fmt.Errorf("%w: loop does not close", ErrInvalidMaze)
}

// Enclosed counts the tiles strictly inside the loop. Scanning each row
// left to right, a cell is inside when an odd number of loop tiles with a
// north connector (|, L, J) lie to its left.
func (m *Maze) Enclosed(loop []int) int {
	g := m.Grid
	onLoop := make([]bool, g.Len())
	for _, idx := range loop {
		onLoop[idx] = true
	}

	count := 0
	for y := 0; y < g.Height; y++ {
		inside := false
		for x := 0; x < g.Width; x++ {
			idx := g.Index(x, y)
			if onLoop[idx] {
				if connectors[m.Tile(x, y)]&North != 0 {
					inside = !inside
				}
				continue
			}
			if inside {
				count++
			}
		}
	}

	return count
}
