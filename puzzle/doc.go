// Package puzzle defines the contract shared by every daily solution.
//
// What
//
//   - Answer: the pair of strings a day produces (part one, part two).
//   - Solver: func(ctx, input) (Answer, error); the input is the whole file.
//   - Registry: day number → Solver, one per edition.
//   - MalformedError / ErrMalformed: the single "bad input" error class.
//   - WithLogger / Logger: carry a *zap.Logger through context.Context.
//
// Solvers are leaves. They read nothing but their input string, share no
// mutable state and never panic on bad input; a malformed file is reported
// with Malformed.
//
// Usage
//
//	func Solve(ctx context.Context, input string) (puzzle.Answer, error) {
//	    lines := puzzle.Lines(input)
//	    ...
//	    return puzzle.NewAnswer(partOne, partTwo), nil
//	}
package puzzle
