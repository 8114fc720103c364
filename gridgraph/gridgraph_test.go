package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventofcode/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that construction rejects empty or ragged inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n", gridgraph.ErrEmptyGrid},
		{"NonRectangular", "ab\nc\n", gridgraph.ErrNonRectangular},
		{"InnerBlankLine", "ab\n\nab", gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.Parse(tc.input, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.input, err, tc.err)
			}
		})
	}
}

// TestParse_TrimsCarriageReturnsAndTrailingLines checks Windows line endings.
func TestParse_TrimsCarriageReturnsAndTrailingLines(t *testing.T) {
	g, err := gridgraph.Parse("ab\r\ncd\r\n\r\n", gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, [][]rune{[]rune("ab"), []rune("cd")}, g.Cells)
}

//----------------------------------------------------------------------------//
// Addressing
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.Parse("abc\ndef", gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

// TestIndexCoordinateRoundTrip walks every cell of a 4×3 grid.
func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := gridgraph.Parse("abcd\nefgh\nijkl", gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		x, y := g.Coordinate(i)
		assert.Equal(t, i, g.Index(x, y))
		r, ok := g.At(x, y)
		require.True(t, ok)
		assert.Equal(t, r, g.AtIndex(i))
	}
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

// TestNeighbors_Conn4 verifies order N, E, S, W and bounds clipping.
func TestNeighbors_Conn4(t *testing.T) {
	g, err := gridgraph.Parse("abc\ndef\nghi", gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	center := g.Index(1, 1)
	assert.Equal(t, []int{g.Index(1, 0), g.Index(2, 1), g.Index(1, 2), g.Index(0, 1)}, g.Neighbors(center))

	corner := g.Index(0, 0)
	assert.Equal(t, []int{g.Index(1, 0), g.Index(0, 1)}, g.Neighbors(corner))
}

// TestNeighbors_Conn8 verifies diagonal connectivity.
func TestNeighbors_Conn8(t *testing.T) {
	g, err := gridgraph.Parse("abc\ndef\nghi", gridgraph.GridOptions{Conn: gridgraph.Conn8})
	require.NoError(t, err)
	assert.Len(t, g.Neighbors(g.Index(1, 1)), 8)
	assert.Len(t, g.Neighbors(g.Index(0, 0)), 3)
	assert.Len(t, g.NeighborOffsets(), 8)
}

//----------------------------------------------------------------------------//
// Lookups
//----------------------------------------------------------------------------//

// TestFindAndFindAll locates marker runes.
func TestFindAndFindAll(t *testing.T) {
	g, err := gridgraph.Parse("a.S\nS..", gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	x, y, ok := g.Find('S')
	require.True(t, ok)
	assert.Equal(t, [2]int{2, 0}, [2]int{x, y})

	_, _, ok = g.Find('E')
	assert.False(t, ok)

	assert.Equal(t, []gridgraph.Cell{{X: 2, Y: 0, Value: 'S'}, {X: 0, Y: 1, Value: 'S'}}, g.FindAll('S'))
}
