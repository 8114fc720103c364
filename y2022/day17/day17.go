package day17

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/adventofcode/puzzle"
)

// Rock counts asked for by the two parts.
const (
	PartOneRocks int64 = 2022
	PartTwoRocks int64 = 1_000_000_000_000
)

// Solve returns the tower height after 2022 and after 10^12 rocks.
func Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	jets, err := ParseJets(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(HeightAfter(ctx, jets, PartOneRocks), HeightAfter(ctx, jets, PartTwoRocks)), nil
}

// Simulate drops n rocks one by one and returns the final height.
func Simulate(jets []Jet, n int) int {
	c := NewChamber(jets)
	for i := 0; i < n; i++ {
		c.Drop()
	}
	return c.Height()
}

// state identifies a point in the simulation up to vertical translation.
type state struct {
	shape, jet int
	top        [profileRows]uint8
}

// cycle is a candidate repetition: the state before rock end equals the
// state before rock start.
type cycle struct {
	start, end int64
}

func (cy cycle) period() int64 { return cy.end - cy.start }

// HeightAfter returns the height after n rocks. The simulation runs until
// a state (next shape, next jet, top rows) repeats. The candidate period is
// accepted only once the following period replays it rock for rock with the
// same states and the same height gains; the total is then extrapolated and
// the remainder read from the recorded prefix.
func HeightAfter(ctx context.Context, jets []Jet, n int64) int64 {
	c := NewChamber(jets)
	seen := map[state]int64{}
	var states []state    // states[k] is the state before rock k
	heights := []int64{0} // heights[k] is the height after k rocks
	var cand *cycle

	for i := int64(0); i < n; i++ {
		st := state{shape: c.shape, jet: c.jet, top: c.profile()}
		states = append(states, st)

		if cand != nil && i == cand.end+cand.period() {
			if confirmed(states, heights, *cand) {
				p := cand.period()
				gain := heights[cand.end] - heights[cand.start]
				cycles, rem := (n-i)/p, (n-i)%p
				puzzle.Logger(ctx).Debug("tower cycle detected",
					zap.Int64("first_rock", cand.start), zap.Int64("period", p), zap.Int64("gain", gain))
				return heights[i] + cycles*gain + heights[cand.start+rem] - heights[cand.start]
			}
			cand = nil
		}
		if j, ok := seen[st]; ok && cand == nil {
			cand = &cycle{start: j, end: i}
		}
		seen[st] = i

		c.Drop()
		heights = append(heights, int64(c.Height()))
	}
	return heights[n]
}

// confirmed reports whether the period after cy.end repeats the period
// [cy.start, cy.end) exactly: equal states before every rock and an equal
// height gain across every offset.
func confirmed(states []state, heights []int64, cy cycle) bool {
	p := cy.period()
	gain := heights[cy.end] - heights[cy.start]
	for k := cy.start; k <= cy.end; k++ {
		if states[k+p] != states[k] || heights[k+p]-heights[k] != gain {
			return false
		}
	}
	return true
}
