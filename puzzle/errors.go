package puzzle

import (
	"errors"
	"fmt"
)

// ErrMalformed is the sentinel every MalformedError unwraps to.
var ErrMalformed = errors.New("puzzle: malformed input")

// MalformedError reports input a kernel could not parse: a non-rectangular
// grid, a missing marker, a bad list literal, a non-digit where a digit was
// expected.
type MalformedError struct {
	// Kernel names the solution that rejected the input, e.g. "2022/13".
	Kernel string
	// Reason is a short human-readable description.
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: malformed input: %s", e.Kernel, e.Reason)
}

// Unwrap lets errors.Is(err, ErrMalformed) match.
func (e *MalformedError) Unwrap() error { return ErrMalformed }

// Malformed builds a *MalformedError with a formatted reason.
func Malformed(kernel, format string, args ...any) error {
	return &MalformedError{Kernel: kernel, Reason: fmt.Sprintf(format, args...)}
}
