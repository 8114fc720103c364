package runner

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/adventofcode/puzzle"
)

// Days in an edition.
const (
	FirstDay = 1
	LastDay  = 25
)

// Runner solves the days of one edition.
type Runner struct {
	Year     int
	Registry puzzle.Registry
	DataDir  string
	FileName FileNamer
}

// Result pairs a day with its answer.
type Result struct {
	Day    int
	Answer puzzle.Answer
}

// Solve reads the input for day from DataDir and runs its solver.
func (r *Runner) Solve(ctx context.Context, day int) (puzzle.Answer, error) {
	if _, err := r.solver(day); err != nil {
		return puzzle.Answer{}, err
	}

	return r.SolveFile(ctx, day, InputPath(r.DataDir, day, r.FileName))
}

// SolveFile runs the solver for day on the file at path.
func (r *Runner) SolveFile(ctx context.Context, day int, path string) (puzzle.Answer, error) {
	solve, err := r.solver(day)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if err := ctx.Err(); err != nil {
		return puzzle.Answer{}, err
	}

	log := puzzle.Logger(ctx).With(zap.Int("year", r.Year), zap.Int("day", day))
	log.Debug("reading input", zap.String("path", path))
	input, err := ReadInput(path)
	if err != nil {
		return puzzle.Answer{}, err
	}

	ans, err := solve(puzzle.WithLogger(ctx, log), input)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("day %d: %w", day, err)
	}
	log.Debug("solved", zap.String("part_one", ans.PartOne), zap.String("part_two", ans.PartTwo))

	return ans, nil
}

// RunAll solves every registered day, at most parallelism at a time
// (runtime.NumCPU() when parallelism < 1). Results are in day order. The
// first failure cancels the remaining days and is returned.
func (r *Runner) RunAll(ctx context.Context, parallelism int) ([]Result, error) {
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}
	days := r.Registry.Days()
	results := make([]Result, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, day := range days {
		g.Go(func() error {
			ans, err := r.Solve(gctx, day)
			if err != nil {
				return err
			}
			results[i] = Result{Day: day, Answer: ans}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *Runner) solver(day int) (puzzle.Solver, error) {
	if day < FirstDay || day > LastDay {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrDayOutOfRange, day, FirstDay, LastDay)
	}
	solve, ok := r.Registry.Lookup(day)
	if !ok {
		return nil, fmt.Errorf("%w %d of %d", ErrUnknownDay, day, r.Year)
	}

	return solve, nil
}
