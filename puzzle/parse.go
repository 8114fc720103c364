package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits input into lines, dropping carriage returns and any blank
// lines at the very end. Inner blank lines are kept.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// NonEmptyLines returns the lines of input that contain anything other
// than whitespace.
func NonEmptyLines(input string) []string {
	var out []string
	for _, l := range Lines(input) {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}

	return out
}

// Blocks groups lines separated by one or more blank lines.
func Blocks(input string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, l := range Lines(input) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks
}

// Ints parses every field as a base-10 int.
func Ints(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("puzzle: %q is not a number: %w", f, err)
		}
		out = append(out, n)
	}

	return out, nil
}

// IntFields parses the whitespace-separated fields of s.
func IntFields(s string) ([]int, error) {
	return Ints(strings.Fields(s))
}
