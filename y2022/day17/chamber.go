// Package day17 stacks falling rocks pushed by a repeating jet pattern.
package day17

import (
	"strings"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2022/17"

// Width of the chamber in cells.
const Width = 7

// profileRows is how many rows below the top make up a tower fingerprint.
const profileRows = 64

// Jet is a horizontal push: -1 for '<', +1 for '>'.
type Jet int

// Point is a chamber cell; y grows upwards from the floor at y = 0.
type Point struct{ X, Y int }

// shapes in spawn order, in local coordinates with (0,0) at the bottom-left.
var shapes = [5][]Point{
	{{0, 0}, {1, 0}, {2, 0}, {3, 0}},         // line
	{{1, 2}, {0, 1}, {1, 1}, {2, 1}, {1, 0}}, // cross
	{{2, 2}, {2, 1}, {0, 0}, {1, 0}, {2, 0}}, // reverse L
	{{0, 0}, {0, 1}, {0, 2}, {0, 3}},         // pipe
	{{0, 0}, {1, 0}, {0, 1}, {1, 1}},         // square
}

// ParseJets reads a single line of '<' and '>'. Trailing whitespace is
// ignored.
func ParseJets(input string) ([]Jet, error) {
	s := strings.TrimRight(input, " \t\r\n")
	if s == "" {
		return nil, puzzle.Malformed(kernel, "no jets")
	}
	jets := make([]Jet, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			jets[i] = -1
		case '>':
			jets[i] = 1
		default:
			return nil, puzzle.Malformed(kernel, "unexpected %q at offset %d", s[i], i)
		}
	}
	return jets, nil
}

// Chamber is the tower state. Each row is a bitmask of occupied columns.
type Chamber struct {
	rows  []uint8
	jets  []Jet
	jet   int // index of the next jet
	shape int // index of the next shape
}

// NewChamber returns an empty chamber driven by jets, which must be non-empty.
func NewChamber(jets []Jet) *Chamber {
	return &Chamber{jets: jets}
}

// Height is one above the highest occupied row, or 0 when empty.
func (c *Chamber) Height() int { return len(c.rows) }

// Occupied reports whether a settled rock covers (x, y).
func (c *Chamber) Occupied(x, y int) bool {
	return y >= 0 && y < len(c.rows) && x >= 0 && x < Width && c.rows[y]&(1<<x) != 0
}

func (c *Chamber) fits(shape []Point, ox, oy int) bool {
	for _, p := range shape {
		x, y := ox+p.X, oy+p.Y
		if x < 0 || x >= Width || y < 0 || c.Occupied(x, y) {
			return false
		}
	}
	return true
}

// Drop spawns the next rock two cells from the left wall with three empty
// rows beneath it, alternates jet push and fall until the rock cannot fall,
// and returns the cells it settled on.
func (c *Chamber) Drop() []Point {
	shape := shapes[c.shape]
	c.shape = (c.shape + 1) % len(shapes)

	x, y := 2, c.Height()+3
	for {
		dx := int(c.jets[c.jet])
		c.jet = (c.jet + 1) % len(c.jets)
		if c.fits(shape, x+dx, y) {
			x += dx
		}
		if !c.fits(shape, x, y-1) {
			break
		}
		y--
	}

	cells := make([]Point, len(shape))
	for i, p := range shape {
		cell := Point{X: x + p.X, Y: y + p.Y}
		for cell.Y >= len(c.rows) {
			c.rows = append(c.rows, 0)
		}
		c.rows[cell.Y] |= 1 << cell.X
		cells[i] = cell
	}
	return cells
}

// profile returns the top profileRows rows, top first. Rows below the floor
// read as full, so a fingerprint taken near the floor records where it is.
func (c *Chamber) profile() [profileRows]uint8 {
	var p [profileRows]uint8
	h := c.Height()
	for d := range p {
		if y := h - 1 - d; y >= 0 {
			p[d] = c.rows[y]
		} else {
			p[d] = 1<<Width - 1
		}
	}
	return p
}

// String draws the tower top-down with '#' for rock and '.' for air.
func (c *Chamber) String() string {
	var sb strings.Builder
	for y := len(c.rows) - 1; y >= 0; y-- {
		sb.WriteByte('|')
		for x := 0; x < Width; x++ {
			if c.Occupied(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+-------+\n")
	return sb.String()
}
