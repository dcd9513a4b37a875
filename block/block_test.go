package block_test

import (
	"testing"

	"github.com/blockdtw/blockdtw/block"
	"github.com/blockdtw/blockdtw/cutlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneCut(length int, value int64) cutlist.CutList {
	c := cutlist.New(length)
	require_(c.Append(value, 0))

	return c
}

// require_ panics on error; only used to build fixtures where the error is
// impossible (value/pos are always valid for a fresh CutList).
func require_(err error) {
	if err != nil {
		panic(err)
	}
}

func TestSolve_SingleCellMatch(t *testing.T) {
	top := oneCut(1, 0)
	left := oneCut(1, 0)

	b, err := block.Solve(1, 1, true, 0, top, left, block.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(0), b.Cost)
	assert.Equal(t, int64(0), b.TL)
	assert.Equal(t, int64(0), b.TR)
	assert.Equal(t, int64(0), b.BL)
	assert.Equal(t, int64(0), b.BR)
}

func TestSolve_SingleCellMismatch(t *testing.T) {
	top := oneCut(1, 0)
	left := oneCut(1, 0)

	b, err := block.Solve(1, 1, false, 0, top, left, block.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.Cost)
	assert.Equal(t, int64(1), b.TL)
	assert.Equal(t, int64(1), b.TR)
	assert.Equal(t, int64(1), b.BL)
	assert.Equal(t, int64(1), b.BR)
}

// TestSolve_SquareMismatch_CornersMonotone checks the general invariants
// any solved mismatch block must satisfy: corners are consistent
// (TL <= TR, BL; BR is the largest), and borders stay within the block's
// declared length and are themselves valid CutLists (checked implicitly —
// Solve would have failed otherwise).
func TestSolve_SquareMismatch_CornersMonotone(t *testing.T) {
	top := oneCut(3, 2)
	left := oneCut(3, 2)

	b, err := block.Solve(3, 3, false, 2, top, left, block.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, int64(2), b.NW)
	assert.LessOrEqual(t, b.TL, b.TR)
	assert.LessOrEqual(t, b.TL, b.BL)
	assert.GreaterOrEqual(t, b.BR, b.TR)
	assert.GreaterOrEqual(t, b.BR, b.BL)
	assert.Equal(t, 3, b.Top.Len())
	assert.Equal(t, 3, b.Left.Len())
	assert.Equal(t, 3, b.Bottom.Len())
	assert.Equal(t, 3, b.Right.Len())
}

// TestSolve_NonSquareMismatch exercises the parallel-transfer path (h != w)
// for both h > w and w > h.
func TestSolve_NonSquareMismatch(t *testing.T) {
	cases := []struct {
		name string
		h, w int
	}{
		{"tall", 5, 2},
		{"wide", 2, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			top := oneCut(tc.w, 0)
			left := oneCut(tc.h, 0)

			b, err := block.Solve(tc.h, tc.w, false, 0, top, left, block.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tc.w, b.Bottom.Len())
			assert.Equal(t, tc.h, b.Right.Len())

			bottomLast, err := b.Bottom.Last()
			require.NoError(t, err)
			rightLast, err := b.Right.Last()
			require.NoError(t, err)
			assert.Equal(t, bottomLast.Value, rightLast.Value)
			assert.Equal(t, b.BR, bottomLast.Value)
		})
	}
}

// TestSolve_Saturates checks that a Capped Options never produces a value
// above the cap, even though the unbounded block would exceed it.
func TestSolve_Saturates(t *testing.T) {
	top := oneCut(4, 0)
	left := oneCut(4, 0)

	capped, err := block.Solve(4, 4, false, 0, top, left, block.Capped(2))
	require.NoError(t, err)
	assert.LessOrEqual(t, capped.BR, int64(2))

	unbounded, err := block.Solve(4, 4, false, 0, top, left, block.DefaultOptions())
	require.NoError(t, err)
	assert.Greater(t, unbounded.BR, int64(2))
}

func TestSolve_InvalidDimensions(t *testing.T) {
	top := oneCut(1, 0)
	left := oneCut(1, 0)

	_, err := block.Solve(0, 1, true, 0, top, left, block.DefaultOptions())
	assert.ErrorIs(t, err, block.ErrInvalidDimensions)

	_, err = block.Solve(1, 2, true, 0, top, left, block.DefaultOptions())
	assert.ErrorIs(t, err, block.ErrInvalidDimensions)
}

func TestSolve_BadOptions(t *testing.T) {
	top := oneCut(1, 0)
	left := oneCut(1, 0)

	_, err := block.Solve(1, 1, true, 0, top, left, block.Options{Bounded: true, MaxValue: -1})
	assert.ErrorIs(t, err, block.ErrBadOptions)
}
