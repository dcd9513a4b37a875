package cutlist

import "errors"

// Sentinel errors for CutList construction and mutation.
var (
	// ErrEmptySequence indicates Pack was called with a zero-length sequence.
	ErrEmptySequence = errors.New("cutlist: sequence must be non-empty")

	// ErrNotNonDecreasing indicates Pack received a sequence with a
	// strictly decreasing step, which cannot be represented as a CutList.
	ErrNotNonDecreasing = errors.New("cutlist: sequence must be non-decreasing")

	// ErrInvalidAppend indicates Append violated the value/position
	// monotonicity invariant relative to the last entry, or positioned at
	// or past the CutList's length.
	ErrInvalidAppend = errors.New("cutlist: append violates cut ordering invariant")

	// ErrEmptyCutList indicates an operation requiring at least one cut
	// (Last, Unpack) was called on a CutList with no entries.
	ErrEmptyCutList = errors.New("cutlist: cut list is empty")
)
