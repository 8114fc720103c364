package day03_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/adventofcode/y2024/day03"
)

func TestScan_Samples(t *testing.T) {
	assert.Equal(t, 161, day03.Scan("xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))", false))
	assert.Equal(t, 48, day03.Scan("xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))", true))
}

func TestScan_RejectsLongOperands(t *testing.T) {
	assert.Zero(t, day03.Scan("mul(1234,2) mul( 1,2) mul(1,2 )", false))
	assert.Equal(t, 2, day03.Scan("don't()mul(1,2)", false), "toggles are ignored in part one")
}
