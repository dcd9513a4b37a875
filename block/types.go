package block

import "github.com/blockdtw/blockdtw/numeric"

// Options bounds the values a block solver computes. When Bounded is
// false, every cell is computed exactly and MaxValue is ignored. When
// Bounded is true, any value that would exceed MaxValue is reported as
// MaxValue instead (saturating), and the solver is free to stop deriving a
// border's remaining cuts early since every later entry would also
// saturate, keeping each border compressed to its distinct values.
//
// Bounded vs. unbounded is a sum type in spirit, not two fields that
// happen to co-vary: ceiling() below is consulted once per block, not
// once per cell.
type Options struct {
	Bounded  bool
	MaxValue int64
}

// DefaultOptions returns unbounded Options: every cell is computed exactly.
func DefaultOptions() Options {
	return Options{Bounded: false}
}

// Capped returns Options bounded at maxValue.
func Capped(maxValue int64) Options {
	return Options{Bounded: true, MaxValue: maxValue}
}

// Validate checks that a Bounded Options carries a non-negative MaxValue.
func (o Options) Validate() error {
	if o.Bounded && o.MaxValue < 0 {
		return ErrBadOptions
	}

	return nil
}

// ceiling returns the effective saturation ceiling: MaxValue when Bounded,
// else numeric.Inf (which is itself a finite sentinel far below
// math.MaxInt64, so unbounded computation still saturates safely at +∞
// rather than overflowing).
func (o Options) ceiling() int64 {
	if o.Bounded {
		return o.MaxValue
	}

	return numeric.Inf
}
