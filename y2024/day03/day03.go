// Package day03 recovers the mul instructions from corrupted memory.
package day03

import (
	"context"
	"regexp"
	"strconv"

	"github.com/katalvlaran/adventofcode/puzzle"
)

var instr = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// Scan sums every mul(x,y). With toggles, don't() disables the following
// muls until the next do().
func Scan(memory string, toggles bool) int {
	sum, enabled := 0, true
	for _, m := range instr.FindAllStringSubmatch(memory, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if enabled || !toggles {
				a, _ := strconv.Atoi(m[1])
				b, _ := strconv.Atoi(m[2])
				sum += a * b
			}
		}
	}
	return sum
}

// Solve returns the plain and toggled sums.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	return puzzle.NewAnswer(Scan(input, false), Scan(input, true)), nil
}
