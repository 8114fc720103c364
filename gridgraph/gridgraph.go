package gridgraph

import "strings"

// Parse builds a Grid from newline-separated text. Carriage returns and
// trailing blank lines are ignored; every remaining line is one row.
// Returns ErrEmptyGrid or ErrNonRectangular for unusable input.
func Parse(input string, opts GridOptions) (*Grid, error) {
	input = strings.ReplaceAll(input, "\r", "")
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	rows := make([][]rune, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []rune(l))
	}

	return newGrid(rows, opts)
}

// newGrid constructs a Grid from a non-empty, rectangular 2D slice.
// Complexity: O(W×H) time and memory.
func newGrid(cells [][]rune, opts GridOptions) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	offsets := conn4Offsets
	if opts.Conn == Conn8 {
		offsets = conn8Offsets
	}

	return &Grid{
		Width:           w,
		Height:          h,
		Cells:           cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// NeighborOffsets returns the (dx,dy) offsets used by Neighbors.
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Len is the number of cells.
func (g *Grid) Len() int {
	return g.Width * g.Height
}

// At returns the rune at (x,y), or 0 and false when out of bounds.
func (g *Grid) At(x, y int) (rune, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}

	return g.Cells[y][x], true
}

// AtIndex returns the rune at a row-major index.
func (g *Grid) AtIndex(idx int) rune {
	x, y := g.Coordinate(idx)

	return g.Cells[y][x]
}

// Neighbors returns the in-bounds neighbor indices of idx in offset order.
// Out-of-bounds neighbors are silently discarded.
func (g *Grid) Neighbors(idx int) []int {
	x, y := g.Coordinate(idx)
	out := make([]int, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, g.Index(nx, ny))
		}
	}

	return out
}

// Find returns the first cell (row-major order) holding r.
func (g *Grid) Find(r rune) (x, y int, ok bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] == r {
				return x, y, true
			}
		}
	}

	return 0, 0, false
}

// FindAll returns every cell holding r in row-major order.
func (g *Grid) FindAll(r rune) []Cell {
	var cells []Cell
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] == r {
				cells = append(cells, Cell{X: x, Y: y, Value: r})
			}
		}
	}

	return cells
}
