package day13_test

import (
	"context"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventofcode/puzzle"
	"github.com/katalvlaran/adventofcode/y2022/day13"
)

const sample = `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]
`

func mustParse(t *testing.T, s string) day13.Packet {
	t.Helper()
	p, err := day13.Parse(s)
	require.NoError(t, err, s)
	return p
}

func TestSolve_Sample(t *testing.T) {
	ans, err := day13.Solve(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{PartOne: "13", PartTwo: "140"}, ans)
}

func TestParse_RoundTrip(t *testing.T) {
	for _, s := range []string{"[]", "[10]", "[[]]", "[1,[2,[3,[4,[5,6,7]]]],8,9]", "[[10,0],[],3]"} {
		assert.Equal(t, s, mustParse(t, s).String())
	}
}

func TestParse_Structure(t *testing.T) {
	got := mustParse(t, "[12,[],[3]]")
	want := day13.List(day13.Int(12), day13.List(), day13.List(day13.Int(3)))
	assert.True(t, day13.Equal(want, got), "got %s", got)
	assert.Equal(t, 12, got.Items()[0].Value())
}

func TestParse_Malformed(t *testing.T) {
	for _, s := range []string{"", "1", "[1,2", "[1,,2]", "[a]", "[1]]", "[1 2]", "[,]"} {
		_, err := day13.Parse(s)
		assert.ErrorIs(t, err, puzzle.ErrMalformed, "input %q", s)
	}

	_, err := day13.Solve(context.Background(), "[1]\n[2]\n[3]\n")
	assert.ErrorIs(t, err, puzzle.ErrMalformed)
}

func TestCompare_SamplePairs(t *testing.T) {
	blocks := puzzle.Blocks(sample)
	want := []int{-1, -1, 1, -1, 1, -1, 1, 1}
	got := make([]int, len(blocks))
	for i, b := range blocks {
		got[i] = day13.Compare(mustParse(t, b[0]), mustParse(t, b[1]))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pair order mismatch (-want +got):\n%s", diff)
	}
}

func TestCompare_MixedTypes(t *testing.T) {
	assert.Equal(t, 0, day13.Compare(day13.Int(2), mustParse(t, "[2]")))
	assert.Equal(t, 0, day13.Compare(mustParse(t, "[[2]]"), mustParse(t, "[2]")))
	assert.False(t, day13.Equal(mustParse(t, "[[2]]"), mustParse(t, "[2]")))
	assert.Equal(t, -1, day13.Compare(mustParse(t, "[[1],[2,3,4]]"), mustParse(t, "[[1],4]")))
}

// randomPacket builds a list packet of bounded depth and width.
func randomPacket(rnd *rand.Rand, depth int) day13.Packet {
	n := rnd.Intn(4)
	items := make([]day13.Packet, 0, n)
	for i := 0; i < n; i++ {
		if depth > 0 && rnd.Intn(3) == 0 {
			items = append(items, randomPacket(rnd, depth-1))
		} else {
			items = append(items, day13.Int(rnd.Intn(4)))
		}
	}
	return day13.List(items...)
}

func TestCompare_TotalOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	corpus := make([]day13.Packet, 60)
	for i := range corpus {
		corpus[i] = randomPacket(rnd, 3)
	}

	for _, a := range corpus {
		require.Equal(t, 0, day13.Compare(a, a), "reflexive %s", a)
		for _, b := range corpus {
			ab, ba := day13.Compare(a, b), day13.Compare(b, a)
			require.Equal(t, -ab, ba, "antisymmetric %s %s", a, b)
			for _, c := range corpus {
				if ab <= 0 && day13.Compare(b, c) <= 0 {
					require.LessOrEqual(t, day13.Compare(a, c), 0, "transitive %s %s %s", a, b, c)
				}
			}
		}
	}
}

func TestSort_Idempotent(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	packets := make([]day13.Packet, 40)
	for i := range packets {
		packets[i] = randomPacket(rnd, 3)
	}
	slices.SortFunc(packets, day13.Compare)
	once := make([]string, len(packets))
	for i, p := range packets {
		once[i] = p.String()
	}

	slices.SortStableFunc(packets, day13.Compare)
	twice := make([]string, len(packets))
	for i, p := range packets {
		twice[i] = p.String()
	}
	assert.Equal(t, strings.Join(once, "\n"), strings.Join(twice, "\n"))
	assert.True(t, slices.IsSortedFunc(packets, day13.Compare))
}

func TestDecoderKey_AlreadyDividersOnly(t *testing.T) {
	key, err := day13.DecoderKey("")
	require.NoError(t, err)
	assert.Equal(t, 2, key)
}
