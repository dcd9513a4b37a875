package block

import (
	"fmt"

	"github.com/blockdtw/blockdtw/cutlist"
	"github.com/blockdtw/blockdtw/numeric"
)

// Block is a solved rectangular sub-matrix induced by one run of Q (height
// H) and one run of T (width W). Cost is 0 if the two defining symbols are
// equal, 1 otherwise. NW is the scalar value the block was solved against;
// TL/TR/BL/BR are its four corner values. Top/Left/Bottom/Right are the
// four border CutLists, of length W, H, W, H respectively.
type Block struct {
	H, W int
	Cost int64

	NW, TL, TR, BL, BR int64

	Top, Left, Bottom, Right cutlist.CutList
}

// Solve derives a block's four borders and four corners from its
// dimensions, whether its defining symbols are equal, the scalar
// north-west neighbour value, and the north/west neighbour CutLists
// (lengths W and H respectively). Complexity: O(H+W).
//
// The block's interior is never filled cell-by-cell: its two outgoing
// borders are computed directly from the two incoming borders and the
// north-west corner, using a triangle transfer across the min(H,W) square
// overlap and, for non-square blocks, a parallel transfer for the rest
// (1-tall and 1-wide blocks are handled directly).
func Solve(h, w int, equalsSymbols bool, vnw int64, qNorth, qWest cutlist.CutList, opts Options) (Block, error) {
	if h < 1 || w < 1 || qNorth.Len() != w || qWest.Len() != h {
		return Block{}, fmt.Errorf("%w: h=%d w=%d qNorth.Len=%d qWest.Len=%d",
			ErrInvalidDimensions, h, w, qNorth.Len(), qWest.Len())
	}
	if err := opts.Validate(); err != nil {
		return Block{}, err
	}

	cost := int64(1)
	if equalsSymbols {
		cost = 0
	}
	ceiling := opts.ceiling()

	qnFirst, err := qNorth.First()
	if err != nil {
		return Block{}, inconsistent(h, w, cost, vnw, qNorth, qWest, err)
	}
	qwFirst, err := qWest.First()
	if err != nil {
		return Block{}, inconsistent(h, w, cost, vnw, qNorth, qWest, err)
	}
	vnwPrime := numeric.Min3(vnw, qnFirst.Value, qwFirst.Value)

	top, err := computeAdjacentQ(equalsSymbols, w, vnwPrime, qNorth, ceiling)
	if err != nil {
		return Block{}, inconsistent(h, w, cost, vnw, qNorth, qWest, err)
	}
	left, err := computeAdjacentQ(equalsSymbols, h, vnwPrime, qWest, ceiling)
	if err != nil {
		return Block{}, inconsistent(h, w, cost, vnw, qNorth, qWest, err)
	}

	topFirst, err1 := top.First()
	leftFirst, err2 := left.First()
	topLast, err3 := top.Last()
	leftLast, err4 := left.Last()
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return Block{}, inconsistent(h, w, cost, vnw, qNorth, qWest, ErrInconsistentBorders)
	}
	if topLast.Pos >= w || leftLast.Pos >= h {
		return Block{}, inconsistent(h, w, cost, vnw, qNorth, qWest, ErrInconsistentBorders)
	}
	if topFirst.Value != leftFirst.Value {
		return Block{}, inconsistent(h, w, cost, vnw, qNorth, qWest, ErrInconsistentBorders)
	}
	tl := topFirst.Value

	bottom, right, err := computeBottomRight(h, w, cost, ceiling, top, left)
	if err != nil {
		return Block{}, inconsistent(h, w, cost, vnw, qNorth, qWest, err)
	}

	bottomLast, err5 := bottom.Last()
	rightLast, err6 := right.Last()
	if err5 != nil || err6 != nil || bottomLast.Pos >= w || rightLast.Pos >= h {
		return Block{}, inconsistent(h, w, cost, vnw, qNorth, qWest, ErrInconsistentBorders)
	}
	if bottomLast.Value != rightLast.Value {
		return Block{}, inconsistent(h, w, cost, vnw, qNorth, qWest, ErrInconsistentBorders)
	}

	return Block{
		H: h, W: w, Cost: cost,
		NW: vnw, TL: tl, TR: topLast.Value, BL: leftLast.Value, BR: bottomLast.Value,
		Top: top, Left: left, Bottom: bottom, Right: right,
	}, nil
}

// inconsistent wraps ErrInconsistentBorders with the offending block's
// full input state, so a caller can reproduce the failure without
// re-running the solver.
func inconsistent(h, w int, cost, vnw int64, qNorth, qWest cutlist.CutList, cause error) error {
	return fmt.Errorf("%w: h=%d w=%d cost=%d vnw=%d qNorth=%+v qWest=%+v: %v",
		ErrInconsistentBorders, h, w, cost, vnw, qNorth, qWest, cause)
}

// appendCeiling appends the saturation value ceiling at pos, unless the
// border is already closed at ceiling (last entry's value already equals
// it), in which case it is a no-op. Once appended, the border must not
// receive further entries — callers return immediately after calling this.
func appendCeiling(dst *cutlist.CutList, ceiling int64, pos int) error {
	if last, err := dst.Last(); err == nil && last.Value == ceiling {
		return nil
	}

	return dst.Append(ceiling, pos)
}

// computeAdjacentQ derives the internal top (or left) border of length
// width from the neighbour border qIn (q_North or q_West) and the
// corrected corner vnwPrime = min(Vnw, qNorth[0], qWest[0]).
//
// When equalsSymbols (cost 0), every internal value is
// min(qIn[j], vnwPrime) — a pure floor, no new diagonal contribution since
// a matched run never adds cost. Otherwise (cost 1), each input cut seeds
// a run of strictly increasing diagonal contributions vnwPrime + (j+1)
// for as long as that stays below qIn[j]+1, followed by a corner-change
// cut at qIn[j]+1.
func computeAdjacentQ(equalsSymbols bool, width int, vnwPrime int64, qIn cutlist.CutList, ceiling int64) (cutlist.CutList, error) {
	out := cutlist.New(width)
	n := qIn.NumCuts()

	if equalsSymbols {
		for i := 0; i < n; i++ {
			cut := qIn.At(i)
			v := numeric.Min(cut.Value, vnwPrime)
			if v > ceiling {
				v = ceiling
			}

			if out.NumCuts() == 0 {
				if err := out.Append(v, cut.Pos); err != nil {
					return out, err
				}
				continue
			}
			last, _ := out.Last()
			if v == last.Value {
				continue
			}
			if err := out.Append(v, cut.Pos); err != nil {
				return out, err
			}
		}

		return out, nil
	}

	const cost = int64(1)
	for i := 0; i < n; i++ {
		cut := qIn.At(i)
		val := cut.Value
		pos := cut.Pos
		lastPos := width
		if i+1 < n {
			lastPos = qIn.At(i + 1).Pos
		}

		j := pos
		if j != 0 {
			j++
		}
		for numeric.SaturateAdd(vnwPrime, int64(j+1)*cost) < numeric.SaturateAdd(val, cost) && j <= lastPos && j < width {
			cand := numeric.SaturateAdd(vnwPrime, int64(j+1)*cost)
			if cand >= ceiling {
				if err := appendCeiling(&out, ceiling, j); err != nil {
					return out, err
				}
				return out, nil
			}
			if err := out.Append(cand, j); err != nil {
				return out, err
			}
			j++
		}
		if j == 0 || (j <= lastPos && j < width) {
			cand := numeric.SaturateAdd(val, cost)
			if cand >= ceiling {
				if err := appendCeiling(&out, ceiling, j); err != nil {
					return out, err
				}
				return out, nil
			}
			if err := out.Append(cand, j); err != nil {
				return out, err
			}
		}
	}

	return out, nil
}

// computeBottomRight derives bottom (length w) and right (length h) from
// top and left, exploiting that inside a constant-cost block values
// propagate by minimum along anti-diagonals. Degenerate 1-wide/1-tall
// blocks are handled directly; otherwise a triangle transfer covers the
// min(h,w) square overlap and, for non-square blocks, a parallel transfer
// covers the remainder.
func computeBottomRight(h, w int, cost, ceiling int64, top, left cutlist.CutList) (bottom, right cutlist.CutList, err error) {
	if h == 1 {
		bottom = top
		topLast, lerr := top.Last()
		if lerr != nil {
			return cutlist.CutList{}, cutlist.CutList{}, lerr
		}
		right = cutlist.New(1)
		if err = right.Append(topLast.Value, 0); err != nil {
			return cutlist.CutList{}, cutlist.CutList{}, err
		}

		return bottom, right, nil
	}
	if w == 1 {
		right = left
		leftLast, lerr := left.Last()
		if lerr != nil {
			return cutlist.CutList{}, cutlist.CutList{}, lerr
		}
		bottom = cutlist.New(1)
		if err = bottom.Append(leftLast.Value, 0); err != nil {
			return cutlist.CutList{}, cutlist.CutList{}, err
		}

		return bottom, right, nil
	}

	bottom = cutlist.New(w)
	right = cutlist.New(h)

	if err = transferTriangle(h, left, &bottom, cost, h, w, ceiling); err != nil {
		return cutlist.CutList{}, cutlist.CutList{}, err
	}
	if err = transferTriangle(w, top, &right, cost, h, w, ceiling); err != nil {
		return cutlist.CutList{}, cutlist.CutList{}, err
	}

	if h > w {
		if err = transferParallel(w, left, &right, cost, h, w, ceiling); err != nil {
			return cutlist.CutList{}, cutlist.CutList{}, err
		}
	} else if w > h {
		if err = transferParallel(h, top, &bottom, cost, h, w, ceiling); err != nil {
			return cutlist.CutList{}, cutlist.CutList{}, err
		}
	}

	return bottom, right, nil
}

// transferTriangle propagates src (a border of length srcLen) across the
// min(h,w) diagonal overlap into dst, in reverse cut order. Stops once the
// anti-diagonal offset k reaches min(h,w), since beyond that point only
// the parallel transfer (for non-square blocks) contributes.
func transferTriangle(srcLen int, src cutlist.CutList, dst *cutlist.CutList, cost int64, h, w int, ceiling int64) error {
	minHW := h
	if w < minHW {
		minHW = w
	}

	n := src.NumCuts()
	for i := n - 1; i >= 0; i-- {
		cut := src.At(i)
		lastPos := srcLen
		if i+1 < n {
			lastPos = src.At(i + 1).Pos
		}

		kStart := srcLen - lastPos
		kEnd := srcLen - cut.Pos
		for k := kStart; k < kEnd; k++ {
			if k >= minHW {
				return nil
			}

			cand := numeric.SaturateAdd(cut.Value, cost*int64(k))
			improves := dst.NumCuts() == 0
			if !improves {
				last, _ := dst.Last()
				improves = last.Value < cand
			}
			if !improves {
				continue
			}

			if cand >= ceiling {
				return appendCeiling(dst, ceiling, k)
			}
			if err := dst.Append(cand, k); err != nil {
				return err
			}
		}
	}

	return nil
}

// transferParallel extends the triangle transfer for a non-square block:
// when h > w, left-column entries beyond offset w-1 also reach the right
// column (minorLen == w, src == left, dst == right); when w > h, top-row
// entries beyond offset h-1 reach the bottom row (minorLen == h,
// src == top, dst == bottom).
func transferParallel(minorLen int, src cutlist.CutList, dst *cutlist.CutList, cost int64, h, w int, ceiling int64) error {
	maxHW := h
	if w > maxHW {
		maxHW = w
	}

	n := src.NumCuts()
	for i := 1; i < n; i++ {
		cut := src.At(i)
		if cut.Pos+minorLen-1 >= maxHW {
			return nil
		}

		last, err := dst.Last()
		if err != nil {
			return err
		}

		cand := numeric.SaturateAdd(cut.Value, cost*int64(minorLen-1))
		if cand <= last.Value {
			continue
		}

		newPos := cut.Pos + minorLen - 1
		if cand >= ceiling {
			return appendCeiling(dst, ceiling, newPos)
		}
		if err = dst.Append(cand, newPos); err != nil {
			return err
		}
	}

	return nil
}
