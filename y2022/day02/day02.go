// Package day02 scores a rock-paper-scissors strategy guide.
package day02

import (
	"context"
	"strings"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2022/02"

type shape int

const (
	rock shape = iota
	paper
	scissors
)

type outcome int

const (
	lose outcome = iota
	draw
	win
)

func (s shape) score() int { return int(s) + 1 }

// beats returns the shape s defeats.
func (s shape) beats() shape { return (s + 2) % 3 }

func play(opponent, me shape) outcome {
	switch {
	case opponent == me:
		return draw
	case me.beats() == opponent:
		return win
	}
	return lose
}

func (o outcome) score() int { return int(o) * 3 }

// shapeFor picks the shape that produces o against opponent.
func shapeFor(opponent shape, o outcome) shape {
	switch o {
	case draw:
		return opponent
	case lose:
		return opponent.beats()
	}
	return (opponent + 1) % 3
}

// Round is one line of the guide: the opponent's letter and the second
// column, read as a shape in part one and an outcome in part two.
type Round struct {
	Opponent shape
	Column   int
}

// Parse reads "A X" lines.
func Parse(input string) ([]Round, error) {
	var rounds []Round
	for i, line := range puzzle.NonEmptyLines(input) {
		f := strings.Fields(line)
		if len(f) != 2 || len(f[0]) != 1 || len(f[1]) != 1 ||
			f[0][0] < 'A' || f[0][0] > 'C' || f[1][0] < 'X' || f[1][0] > 'Z' {
			return nil, puzzle.Malformed(kernel, "line %d: %q", i+1, line)
		}
		rounds = append(rounds, Round{
			Opponent: shape(f[0][0] - 'A'),
			Column:   int(f[1][0] - 'X'),
		})
	}

	return rounds, nil
}

// Score totals the guide; asOutcome selects the part-two reading.
func Score(rounds []Round, asOutcome bool) int {
	total := 0
	for _, r := range rounds {
		me := shape(r.Column)
		if asOutcome {
			me = shapeFor(r.Opponent, outcome(r.Column))
		}
		total += me.score() + play(r.Opponent, me).score()
	}

	return total
}

// Solve returns both totals.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	rounds, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(Score(rounds, false), Score(rounds, true)), nil
}
