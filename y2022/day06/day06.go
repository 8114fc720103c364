// Package day06 locates the start-of-packet and start-of-message markers.
package day06

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/adventofcode/puzzle"
)

// ErrNoMarker is returned when no window of distinct characters exists.
var ErrNoMarker = errors.New("day06: no marker in stream")

// Marker returns the number of characters read when the last n characters
// are pairwise distinct for the first time.
func Marker(stream string, n int) (int, error) {
	var counts [256]int
	dupes := 0
	for i := 0; i < len(stream); i++ {
		c := stream[i]
		if counts[c]++; counts[c] == 2 {
			dupes++
		}
		if i >= n {
			old := stream[i-n]
			if counts[old]--; counts[old] == 1 {
				dupes--
			}
		}
		if i >= n-1 && dupes == 0 {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: window %d over %d characters", ErrNoMarker, n, len(stream))
}

// Solve returns the packet (4) and message (14) marker positions.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	stream := strings.TrimSpace(input)
	packet, err := Marker(stream, 4)
	if err != nil {
		return puzzle.Answer{}, err
	}
	message, err := Marker(stream, 14)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(packet, message), nil
}
