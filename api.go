package blockdtw

// BlockDTW computes the bottom-right value of the block DTW matrix of q
// against t under mode: the DTW distance under Global; under PatternMatch,
// the cost of the best alignment of q ending at the last position of t.
// An optional maxValue caps the computed distance (saturating): pass at most
// one value. Complexity: O(|q|*rT + rQ*|t|).
func BlockDTW(q, t string, mode Mode, maxValue ...int64) (int64, error) {
	opts := Options{Mode: mode}
	if len(maxValue) > 0 {
		opts.Bounded = true
		opts.MaxValue = maxValue[0]
	}

	m, err := New(q, t, opts)
	if err != nil {
		return 0, err
	}

	return m.GlobalValue(), nil
}

// BlockDTWPatternMatch computes the PatternMatch-mode last row: index j of
// the returned length-(|t|+1) slice holds the cost of the best alignment
// of q ending at absolute text position j, for j in [0, |t|]. j == 0 is
// the empty-text-prefix case, unreachable by a non-empty q, so it is
// always saturated.
func BlockDTWPatternMatch(q, t string, maxValue ...int64) ([]int64, error) {
	opts := Options{Mode: PatternMatch}
	if len(maxValue) > 0 {
		opts.Bounded = true
		opts.MaxValue = maxValue[0]
	}

	m, err := New(q, t, opts)
	if err != nil {
		return nil, err
	}

	return m.LastRow()
}
