// Package y2022 collects the solutions of the 2022 edition.
package y2022

import (
	"github.com/katalvlaran/adventofcode/puzzle"
	"github.com/katalvlaran/adventofcode/y2022/day01"
	"github.com/katalvlaran/adventofcode/y2022/day02"
	"github.com/katalvlaran/adventofcode/y2022/day03"
	"github.com/katalvlaran/adventofcode/y2022/day06"
	"github.com/katalvlaran/adventofcode/y2022/day07"
	"github.com/katalvlaran/adventofcode/y2022/day08"
	"github.com/katalvlaran/adventofcode/y2022/day12"
	"github.com/katalvlaran/adventofcode/y2022/day13"
	"github.com/katalvlaran/adventofcode/y2022/day14"
	"github.com/katalvlaran/adventofcode/y2022/day15"
	"github.com/katalvlaran/adventofcode/y2022/day17"
)

// Registry returns a fresh day → solver table.
func Registry() puzzle.Registry {
	return puzzle.Registry{
		1:  day01.Solve,
		2:  day02.Solve,
		3:  day03.Solve,
		6:  day06.Solve,
		7:  day07.Solve,
		8:  day08.Solve,
		12: day12.Solve,
		13: day13.Solve,
		14: day14.Solve,
		15: day15.Solve,
		17: day17.Solve,
	}
}
