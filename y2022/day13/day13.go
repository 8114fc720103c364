package day13

import (
	"context"
	"slices"

	"github.com/katalvlaran/adventofcode/puzzle"
)

// Dividers are the two packets inserted before sorting in part two.
var dividers = [2]string{"[[2]]", "[[6]]"}

// Solve returns the sum of indices of ordered pairs and the decoder key.
func Solve(_ context.Context, input string) (puzzle.Answer, error) {
	pairs, err := parsePairs(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	key, err := DecoderKey(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(OrderedPairSum(pairs), key), nil
}

// OrderedPairSum adds the 1-based index of every pair whose left packet
// sorts strictly before its right packet.
func OrderedPairSum(pairs [][2]Packet) int {
	sum := 0
	for i, pr := range pairs {
		if Compare(pr[0], pr[1]) < 0 {
			sum += i + 1
		}
	}
	return sum
}

// DecoderKey sorts every packet in input together with the two dividers and
// multiplies the dividers' 1-based positions.
func DecoderKey(input string) (int, error) {
	var packets []Packet
	for _, line := range puzzle.NonEmptyLines(input) {
		p, err := Parse(line)
		if err != nil {
			return 0, err
		}
		packets = append(packets, p)
	}
	divs := make([]Packet, len(dividers))
	for i, d := range dividers {
		divs[i], _ = Parse(d)
	}
	packets = append(packets, divs...)

	slices.SortFunc(packets, Compare)

	key := 1
	for _, d := range divs {
		idx := slices.IndexFunc(packets, func(p Packet) bool { return Equal(p, d) })
		key *= idx + 1
	}
	return key, nil
}

func parsePairs(input string) ([][2]Packet, error) {
	var pairs [][2]Packet
	for _, block := range puzzle.Blocks(input) {
		if len(block) != 2 {
			return nil, puzzle.Malformed(kernel, "pair %d has %d lines", len(pairs)+1, len(block))
		}
		var pr [2]Packet
		for i, line := range block {
			p, err := Parse(line)
			if err != nil {
				return nil, err
			}
			pr[i] = p
		}
		pairs = append(pairs, pr)
	}
	return pairs, nil
}
