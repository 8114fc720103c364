// Package gridgraph defines core types and options for rune grids.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Offsets in the order Neighbors reports them.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Cell is a single grid cell with its coordinates and rune.
type Cell struct {
	X, Y  int
	Value rune
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Grid is a rectangular rune grid. Cells[y][x] holds the rune at (x, y);
// y grows downwards, matching the line order of the input.
type Grid struct {
	Width, Height   int
	Cells           [][]rune
	Conn            Connectivity
	neighborOffsets [][2]int
}
