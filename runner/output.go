package runner

import (
	"fmt"
	"io"
)

// WriteAnswer prints one day in the fixed layout:
//
//	Day <N>:
//	    Part one: <answer>
//	    Part two: <answer>
func WriteAnswer(w io.Writer, res Result) error {
	_, err := fmt.Fprintf(w, "Day %d:\n    Part one: %s\n    Part two: %s\n",
		res.Day, res.Answer.PartOne, res.Answer.PartTwo)

	return err
}
