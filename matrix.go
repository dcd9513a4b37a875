package blockdtw

import (
	"fmt"

	"github.com/blockdtw/blockdtw/block"
	"github.com/blockdtw/blockdtw/cutlist"
	"github.com/blockdtw/blockdtw/numeric"
	"github.com/blockdtw/blockdtw/runlen"
)

// Matrix is the run-length-compressed DTW matrix for a pattern Q against a
// text T: an rQ x rT grid of solved Blocks, one per (Q-run, T-run) pair.
//
// Blocks are solved in raster order: each interior block reads its
// north-west neighbour's BR corner, its northern neighbour's Bottom
// border, and its western neighbour's Right border. Row 0 and column 0
// boundary blocks instead read a virtual, analytically closed-form border
// — see rowZeroSegment and colZeroSegment — since they have no real
// neighbour to read from.
type Matrix struct {
	qRuns, tRuns []runlen.Run
	grid         [][]block.Block
	opts         Options
}

// New run-length-compresses q and t and solves every block in raster
// order. Complexity: O(|q|*rT + rQ*|t|) — O(w) for each row-0 block's
// closed-form border (O(|t|) across row 0), O(h) for each column-0
// block's (O(|q|) down column 0), and O(h+w) per block solve.
func New(q, t string, opts Options) (*Matrix, error) {
	if len(q) == 0 || len(t) == 0 {
		return nil, ErrEmptyInput
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	qRuns, err := runlen.Runs(q)
	if err != nil {
		return nil, err
	}
	tRuns, err := runlen.Runs(t)
	if err != nil {
		return nil, err
	}

	m := &Matrix{qRuns: qRuns, tRuns: tRuns, opts: opts}
	m.grid = make([][]block.Block, len(qRuns))
	for i := range m.grid {
		m.grid[i] = make([]block.Block, len(tRuns))
	}

	rowStart := 0
	blockOpts := block.Options{Bounded: opts.Bounded, MaxValue: opts.MaxValue}
	for i, qr := range qRuns {
		colStart := 0
		for j, tr := range tRuns {
			var vnw int64
			var qNorth, qWest cutlist.CutList

			switch {
			case i == 0:
				qNorth = rowZeroSegment(opts.Mode, colStart, tr.Length)
			default:
				qNorth = m.grid[i-1][j].Bottom
			}
			switch {
			case j == 0:
				qWest = colZeroSegment(opts.Mode, rowStart, qr.Length)
			default:
				qWest = m.grid[i][j-1].Right
			}

			switch {
			case i == 0:
				vnw = rowZeroValue(opts.Mode, colStart)
			case j == 0:
				vnw = colZeroValue(opts.Mode, rowStart)
			default:
				vnw = m.grid[i-1][j-1].BR
			}

			equals := qr.Symbol == tr.Symbol
			b, err := block.Solve(qr.Length, tr.Length, equals, vnw, qNorth, qWest, blockOpts)
			if err != nil {
				return nil, fmt.Errorf("blockdtw: block(%d,%d): %w", i, j, err)
			}
			m.grid[i][j] = b

			colStart += tr.Length
		}
		rowStart += qr.Length
	}

	return m, nil
}

// rowZeroSegment returns the virtual border above block-row 0, spanning w
// columns starting at absolute text position colStart: the incremental-gap
// ramp under Global mode, or a constant 0 under PatternMatch.
func rowZeroSegment(mode Mode, colStart, w int) cutlist.CutList {
	c := cutlist.New(w)
	if mode == PatternMatch {
		_ = c.Append(0, 0)

		return c
	}
	for p := 0; p < w; p++ {
		_ = c.Append(int64(colStart+p+1), p)
	}

	return c
}

// colZeroSegment returns the virtual border left of block-column 0,
// spanning h rows starting at absolute pattern position rowStart: the
// incremental-gap ramp under Global mode, or a constant +Inf under
// PatternMatch (a non-empty prefix of Q can never align against the empty
// prefix of T in pattern-match mode).
func colZeroSegment(mode Mode, rowStart, h int) cutlist.CutList {
	c := cutlist.New(h)
	if mode == PatternMatch {
		_ = c.Append(numeric.Inf, 0)

		return c
	}
	for p := 0; p < h; p++ {
		_ = c.Append(int64(rowStart+p+1), p)
	}

	return c
}

// rowZeroValue is the scalar row-0 value at absolute column colStart.
func rowZeroValue(mode Mode, colStart int) int64 {
	if mode == PatternMatch {
		return 0
	}

	return int64(colStart)
}

// colZeroValue is the scalar column-0 value at absolute row rowStart.
func colZeroValue(mode Mode, rowStart int) int64 {
	if mode == PatternMatch {
		if rowStart == 0 {
			return 0
		}

		return numeric.Inf
	}

	return int64(rowStart)
}

// GlobalValue returns the bottom-right corner of the whole matrix — the
// Global-mode DTW distance between the full Q and T. Meaningful for any
// Mode, but only the intended query under Global.
func (m *Matrix) GlobalValue() int64 {
	last := m.grid[len(m.grid)-1]

	return last[len(last)-1].BR
}

// LastRow returns the final DP row, one value per absolute text column
// 0..|T| — index j holds the value at (|Q|, j). Index 0 is the virtual
// column-0 value at (|Q|, 0) for the matrix's Mode (saturated at MaxValue
// when Bounded); the rest is the concatenated bottom borders of the last
// block row, unpacked column by column.
func (m *Matrix) LastRow() ([]int64, error) {
	lastRow := m.grid[len(m.grid)-1]

	qLen := 0
	for _, r := range m.qRuns {
		qLen += r.Length
	}
	corner := colZeroValue(m.opts.Mode, qLen)
	if m.opts.Bounded && corner > m.opts.MaxValue {
		corner = m.opts.MaxValue
	}

	out := make([]int64, 1, len(m.tRuns)+1)
	out[0] = corner

	for _, b := range lastRow {
		seg, err := b.Bottom.Unpack()
		if err != nil {
			return nil, err
		}
		out = append(out, seg...)
	}

	return out, nil
}

// LastRowMinIndex returns the smallest value in LastRow and the largest
// absolute text column j in [0, |T|] attaining it (ties favour the
// longest match against T).
func (m *Matrix) LastRowMinIndex() (int64, int, error) {
	row, err := m.LastRow()
	if err != nil {
		return 0, 0, err
	}

	best, bestJ := row[0], 0
	for j := 1; j < len(row); j++ {
		if row[j] <= best {
			best, bestJ = row[j], j
		}
	}

	return best, bestJ, nil
}
