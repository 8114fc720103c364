// Package y2023 collects the solutions of the 2023 edition.
package y2023

import (
	"github.com/katalvlaran/adventofcode/puzzle"
	"github.com/katalvlaran/adventofcode/y2023/day01"
	"github.com/katalvlaran/adventofcode/y2023/day02"
	"github.com/katalvlaran/adventofcode/y2023/day03"
	"github.com/katalvlaran/adventofcode/y2023/day04"
	"github.com/katalvlaran/adventofcode/y2023/day05"
	"github.com/katalvlaran/adventofcode/y2023/day06"
	"github.com/katalvlaran/adventofcode/y2023/day07"
	"github.com/katalvlaran/adventofcode/y2023/day08"
	"github.com/katalvlaran/adventofcode/y2023/day09"
	"github.com/katalvlaran/adventofcode/y2023/day10"
	"github.com/katalvlaran/adventofcode/y2023/day11"
)

// Registry returns a fresh day → solver table.
func Registry() puzzle.Registry {
	return puzzle.Registry{
		1:  day01.Solve,
		2:  day02.Solve,
		3:  day03.Solve,
		4:  day04.Solve,
		5:  day05.Solve,
		6:  day06.Solve,
		7:  day07.Solve,
		8:  day08.Solve,
		9:  day09.Solve,
		10: day10.Solve,
		11: day11.Solve,
	}
}
