package blockdtw_test

import (
	"testing"

	"github.com/blockdtw/blockdtw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concrete end-to-end scenarios (match=0, mismatch=1).

func TestScenario1_IdenticalRuns(t *testing.T) {
	got, err := blockdtw.BlockDTW("AAA", "AAA", blockdtw.Global)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestScenario2_RunExpansionIsFree(t *testing.T) {
	got, err := blockdtw.BlockDTW("AB", "AAABBB", blockdtw.Global)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestScenario3_InsertionInMiddle(t *testing.T) {
	got, err := blockdtw.BlockDTW("ABC", "AABC", blockdtw.Global)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestScenario4_PatternMatch(t *testing.T) {
	row, err := blockdtw.BlockDTWPatternMatch("ABC", "AXBXC")
	require.NoError(t, err)

	best, bestJ := row[0], 0
	for j := 1; j < len(row); j++ {
		if row[j] <= best {
			best, bestJ = row[j], j
		}
	}
	assert.Equal(t, int64(2), best)
	assert.Equal(t, 5, bestJ)
}

func TestScenario6_CappedAtOne(t *testing.T) {
	const q, ty = "aaaabbbcc", "aabbbbbbcccc"

	uncapped, err := blockdtw.BlockDTW(q, ty, blockdtw.Global)
	require.NoError(t, err)

	capped, err := blockdtw.BlockDTW(q, ty, blockdtw.Global, 1)
	require.NoError(t, err)

	want := uncapped
	if want > 1 {
		want = 1
	}
	assert.Equal(t, want, capped)
}

func TestNew_EmptyInput(t *testing.T) {
	_, err := blockdtw.BlockDTW("", "AAA", blockdtw.Global)
	assert.ErrorIs(t, err, blockdtw.ErrEmptyInput)
}

func TestNew_BadMode(t *testing.T) {
	_, err := blockdtw.New("A", "A", blockdtw.Options{Mode: 7})
	assert.ErrorIs(t, err, blockdtw.ErrBadOptions)
}

func TestDTW_SelfDistanceIsZero(t *testing.T) {
	for _, s := range []string{"A", "AAAA", "ABCABC", "aabbccdd"} {
		got, err := blockdtw.BlockDTW(s, s, blockdtw.Global)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got, "self-distance of %q", s)
	}
}

func TestDTW_SymmetricUnderGlobal(t *testing.T) {
	q, ty := "aaaabbbcc", "aabbbbbbcccc"
	a, err := blockdtw.BlockDTW(q, ty, blockdtw.Global)
	require.NoError(t, err)
	b, err := blockdtw.BlockDTW(ty, q, blockdtw.Global)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
