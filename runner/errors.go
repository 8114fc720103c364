package runner

import "errors"

var (
	// ErrUnknownDay is returned when no solver is registered for a day.
	ErrUnknownDay = errors.New("runner: no solver for day")

	// ErrDayOutOfRange is returned for a day outside 1..25.
	ErrDayOutOfRange = errors.New("runner: day out of range")

	// ErrInputRead wraps any failure to read an input file.
	ErrInputRead = errors.New("runner: cannot read input")

	// ErrBadConfig reports an invalid configuration value.
	ErrBadConfig = errors.New("runner: invalid config")
)
