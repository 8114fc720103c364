package day10

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/adventofcode/puzzle"
)

// Solve returns the distance to the farthest loop tile and the number of
// enclosed tiles.
func Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	m, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	loop, err := m.Loop()
	if err != nil {
		return puzzle.Answer{}, err
	}
	inside := m.Enclosed(loop)
	puzzle.Logger(ctx).Debug("pipe loop traced",
		zap.String("start_tile", string(m.StartTile)), zap.Int("length", len(loop)), zap.Int("enclosed", inside))

	return puzzle.NewAnswer((len(loop)+1)/2, inside), nil
}
