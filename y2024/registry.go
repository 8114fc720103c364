// Package y2024 collects the solutions of the 2024 edition.
package y2024

import (
	"github.com/katalvlaran/adventofcode/puzzle"
	"github.com/katalvlaran/adventofcode/y2024/day01"
	"github.com/katalvlaran/adventofcode/y2024/day02"
	"github.com/katalvlaran/adventofcode/y2024/day03"
	"github.com/katalvlaran/adventofcode/y2024/day04"
	"github.com/katalvlaran/adventofcode/y2024/day05"
	"github.com/katalvlaran/adventofcode/y2024/day06"
)

// Registry returns a fresh day → solver table.
func Registry() puzzle.Registry {
	return puzzle.Registry{
		1: day01.Solve,
		2: day02.Solve,
		3: day03.Solve,
		4: day04.Solve,
		5: day05.Solve,
		6: day06.Solve,
	}
}
