// Package day02 checks cube games against a bag's contents.
package day02

import (
	"context"
	"strconv"
	"strings"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2023/02"

// Set counts cubes per colour.
type Set struct {
	Red, Green, Blue int
}

// Bag is the load checked in part one.
var Bag = Set{Red: 12, Green: 13, Blue: 14}

// Game is an id with the largest count seen of each colour.
type Game struct {
	ID  int
	Max Set
}

// Possible reports whether every draw fits inside bag.
func (g Game) Possible(bag Set) bool {
	return g.Max.Red <= bag.Red && g.Max.Green <= bag.Green && g.Max.Blue <= bag.Blue
}

// Power is the product of the minimum cubes needed.
func (g Game) Power() int { return g.Max.Red * g.Max.Green * g.Max.Blue }

// ParseGame reads "Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red".
func ParseGame(line string) (Game, error) {
	head, draws, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, puzzle.Malformed(kernel, "missing ':' in %q", line)
	}
	id, err := strconv.Atoi(strings.TrimPrefix(head, "Game "))
	if err != nil {
		return Game{}, puzzle.Malformed(kernel, "bad game id %q", head)
	}
	g := Game{ID: id}
	for _, draw := range strings.Split(draws, ";") {
		for _, item := range strings.Split(draw, ",") {
			f := strings.Fields(item)
			if len(f) != 2 {
				return Game{}, puzzle.Malformed(kernel, "game %d: bad draw %q", id, item)
			}
			n, err := strconv.Atoi(f[0])
			if err != nil {
				return Game{}, puzzle.Malformed(kernel, "game %d: bad count %q", id, f[0])
			}
			switch f[1] {
			case "red":
				g.Max.Red = max(g.Max.Red, n)
			case "green":
				g.Max.Green = max(g.Max.Green, n)
			case "blue":
				g.Max.Blue = max(g.Max.Blue, n)
			default:
				return Game{}, puzzle.Malformed(kernel, "game %d: unknown colour %q", id, f[1])
			}
		}
	}
	return g, nil
}

// Solve sums the ids of possible games and the powers of all games.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	ids, power := 0, 0
	for _, line := range puzzle.NonEmptyLines(input) {
		g, err := ParseGame(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		if g.Possible(Bag) {
			ids += g.ID
		}
		power += g.Power()
	}
	return puzzle.NewAnswer(ids, power), nil
}
