package block

import "errors"

// ErrInconsistentBorders indicates an internal invariant was violated while
// solving a block's borders — a bug, not a data issue. Wrapped with the
// offending block's (h, w, cost, Vnw, q_North, q_West) for diagnosis.
var ErrInconsistentBorders = errors.New("block: inconsistent borders")

// ErrInvalidDimensions indicates h or w was less than 1, or a supplied
// border CutList's length did not match the block's height/width.
var ErrInvalidDimensions = errors.New("block: height and width must be >= 1 and match border lengths")

// ErrBadOptions indicates a bounded Options carried a negative MaxValue.
var ErrBadOptions = errors.New("block: MaxValue must be non-negative when Bounded")
