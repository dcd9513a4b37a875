package runlen_test

import (
	"testing"

	"github.com/blockdtw/blockdtw/runlen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRuns_EmptyInput verifies that Runs rejects an empty string.
func TestRuns_EmptyInput(t *testing.T) {
	_, err := runlen.Runs("")
	assert.ErrorIs(t, err, runlen.ErrEmptyInput, "empty string must error")
}

// TestRuns_SingleRun checks a string made of one repeated symbol.
func TestRuns_SingleRun(t *testing.T) {
	runs, err := runlen.Runs("aaaa")
	require.NoError(t, err)
	assert.Equal(t, []runlen.Run{{Symbol: 'a', Length: 4}}, runs)
}

// TestRuns_MultipleRuns checks that consecutive runs never share a symbol.
func TestRuns_MultipleRuns(t *testing.T) {
	runs, err := runlen.Runs("aaabbbaacc")
	require.NoError(t, err)
	want := []runlen.Run{
		{Symbol: 'a', Length: 3},
		{Symbol: 'b', Length: 3},
		{Symbol: 'a', Length: 2},
		{Symbol: 'c', Length: 2},
	}
	assert.Equal(t, want, runs)

	var r runlen.Run
	for i := 1; i < len(runs); i++ {
		r = runs[i]
		assert.NotEqual(t, runs[i-1].Symbol, r.Symbol, "consecutive runs must differ")
	}
}

// TestRuns_NoRepeats checks a string with no repeated adjacent symbols.
func TestRuns_NoRepeats(t *testing.T) {
	runs, err := runlen.Runs("abcde")
	require.NoError(t, err)
	assert.Len(t, runs, 5)
	for _, r := range runs {
		assert.Equal(t, 1, r.Length)
	}
}

// TestBoundaries_MatchesRunLengths checks that Boundaries returns the last
// index of each run.
func TestBoundaries_MatchesRunLengths(t *testing.T) {
	ends, err := runlen.Boundaries("aaabbbaacc")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 7, 9}, ends)
}

// TestBoundaries_EmptyInput verifies error propagation from Runs.
func TestBoundaries_EmptyInput(t *testing.T) {
	_, err := runlen.Boundaries("")
	assert.ErrorIs(t, err, runlen.ErrEmptyInput)
}

// TestUnrun_RoundTrip verifies that Unrun(Runs(s)) == s for varied inputs.
func TestUnrun_RoundTrip(t *testing.T) {
	cases := []string{"a", "aaaa", "aaabbbaacc", "abcde", "ABCABC"}
	var s string
	for _, s = range cases {
		runs, err := runlen.Runs(s)
		require.NoError(t, err)
		assert.Equal(t, s, runlen.Unrun(runs), "round trip for %q", s)
	}
}
