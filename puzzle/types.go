package puzzle

import (
	"context"
	"fmt"
	"slices"
)

// Answer holds the two results of a day. Both parts are rendered as strings;
// numeric answers go through NewAnswer.
type Answer struct {
	PartOne string
	PartTwo string
}

// NewAnswer formats two values with fmt.Sprint.
func NewAnswer(partOne, partTwo any) Answer {
	return Answer{PartOne: fmt.Sprint(partOne), PartTwo: fmt.Sprint(partTwo)}
}

// Solver computes both parts of a day from the full input text.
type Solver func(ctx context.Context, input string) (Answer, error)

// Registry maps a day number (1..25) to its Solver.
type Registry map[int]Solver

// Lookup returns the solver registered for day.
func (r Registry) Lookup(day int) (Solver, bool) {
	s, ok := r[day]
	return s, ok && s != nil
}

// Days returns the registered day numbers in ascending order.
func (r Registry) Days() []int {
	days := make([]int, 0, len(r))
	for d, s := range r {
		if s != nil {
			days = append(days, d)
		}
	}
	slices.Sort(days)

	return days
}
