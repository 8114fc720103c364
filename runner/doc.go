// Package runner dispatches a day number to its registered puzzle.Solver,
// reads the day's input file and prints the two answers.
//
// A Runner is bound to one edition: its year, registry, data directory and
// input file naming. Solve runs one day; RunAll runs every registered day
// concurrently (bounded by a parallelism limit) and returns results in day
// order. NewCommand wraps a Runner in a cobra command with flags --day,
// --data-dir, --all, --config and --verbose.
//
// Errors:
//
//   - ErrDayOutOfRange  day outside 1..25
//   - ErrUnknownDay     no solver registered for the day
//   - ErrInputRead      the input file is missing, unreadable or not UTF-8
//   - ErrBadConfig      a config file value is invalid
package runner
