package blockdtw

import "errors"

// Sentinel errors surfaced by the package-level API and the Matrix driver.
var (
	// ErrEmptyInput indicates Q or T has length 0.
	ErrEmptyInput = errors.New("blockdtw: Q and T must be non-empty")

	// ErrBadOptions indicates an invalid Mode, or a negative MaxValue with
	// Bounded set.
	ErrBadOptions = errors.New("blockdtw: invalid options combination")
)
