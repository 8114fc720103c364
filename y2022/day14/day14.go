// Package day14 simulates sand pouring into a cave of rock paths.
package day14

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2022/14"

// Origin is where every grain enters.
var Origin = Point{X: 500, Y: 0}

// Point is a cave cell; y grows downwards.
type Point struct{ X, Y int }

// Cave holds the immutable rock cells and the sand settled so far.
type Cave struct {
	rocks    map[Point]bool
	sand     map[Point]bool
	maxY     int
	hasFloor bool
	dropped  int
}

// ParseCave reads lines of "x,y -> x,y -> …". Every segment must be
// horizontal or vertical.
func ParseCave(input string) (*Cave, error) {
	c := &Cave{rocks: map[Point]bool{}, sand: map[Point]bool{}}
	for n, line := range puzzle.NonEmptyLines(input) {
		var prev *Point
		for _, field := range strings.Split(line, "->") {
			p, err := parsePoint(strings.TrimSpace(field))
			if err != nil {
				return nil, puzzle.Malformed(kernel, "line %d: %v", n+1, err)
			}
			if prev == nil {
				c.addRock(p)
			} else if err := c.addSegment(*prev, p); err != nil {
				return nil, puzzle.Malformed(kernel, "line %d: %v", n+1, err)
			}
			prev = &p
		}
	}
	if len(c.rocks) == 0 {
		return nil, puzzle.Malformed(kernel, "no rock paths")
	}

	return c, nil
}

func parsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("bad point %q", s)
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil || x < 0 || y < 0 {
		return Point{}, fmt.Errorf("bad point %q", s)
	}
	return Point{X: x, Y: y}, nil
}

func (c *Cave) addRock(p Point) {
	c.rocks[p] = true
	c.maxY = max(c.maxY, p.Y)
}

func (c *Cave) addSegment(a, b Point) error {
	if a.X != b.X && a.Y != b.Y {
		return fmt.Errorf("segment %d,%d -> %d,%d is not axis-aligned", a.X, a.Y, b.X, b.Y)
	}
	for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
		for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
			c.addRock(Point{X: x, Y: y})
		}
	}
	return nil
}

// MaxRockY is the lowest rock row.
func (c *Cave) MaxRockY() int { return c.maxY }

// Floor is the row of the infinite floor used when pouring with a floor.
func (c *Cave) Floor() int { return c.maxY + 2 }

// Blocked reports whether p holds rock, sand or (when enabled) the floor.
func (c *Cave) Blocked(p Point) bool {
	if c.hasFloor && p.Y >= c.Floor() {
		return true
	}
	return c.rocks[p] || c.sand[p]
}

// IsRock reports whether p is part of a rock path.
func (c *Cave) IsRock(p Point) bool { return c.rocks[p] }

// Sand returns the settled grains ordered by row then column.
func (c *Cave) Sand() []Point {
	out := make([]Point, 0, len(c.sand))
	for p := range c.sand {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// Dropped is the number of grains released by the last pour.
func (c *Cave) Dropped() int { return c.dropped }

// Reset removes all sand.
func (c *Cave) Reset() {
	clear(c.sand)
	c.dropped = 0
}

// drop lets one grain fall from Origin. It returns the settled cell, or
// false when the grain falls past the lowest rock (floorless mode only).
func (c *Cave) drop() (Point, bool) {
	c.dropped++
	p := Origin
	for {
		if !c.hasFloor && p.Y > c.maxY {
			return p, false
		}
		moved := false
		for _, dx := range [3]int{0, -1, 1} {
			next := Point{X: p.X + dx, Y: p.Y + 1}
			if !c.Blocked(next) {
				p, moved = next, true
				break
			}
		}
		if !moved {
			return p, true
		}
	}
}

// PourUntilAbyss drops grains until one falls below every rock and returns
// how many settled.
func (c *Cave) PourUntilAbyss() int {
	c.Reset()
	c.hasFloor = false
	for {
		p, ok := c.drop()
		if !ok {
			return len(c.sand)
		}
		c.sand[p] = true
	}
}

// PourUntilBlocked adds the floor and drops grains until the origin itself
// is filled; the grain at the origin is counted.
func (c *Cave) PourUntilBlocked() int {
	c.Reset()
	c.hasFloor = true
	for !c.sand[Origin] {
		p, _ := c.drop()
		c.sand[p] = true
	}
	return len(c.sand)
}

// Solve returns the grains resting before sand reaches the abyss and the
// grains resting when the floor is present and the source is plugged.
func Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	cave, err := ParseCave(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	one := cave.PourUntilAbyss()
	two := cave.PourUntilBlocked()
	puzzle.Logger(ctx).Debug("sand settled",
		zap.Int("rocks", len(cave.rocks)), zap.Int("max_y", cave.maxY),
		zap.Int("abyss", one), zap.Int("floor", two))

	return puzzle.NewAnswer(one, two), nil
}
