package runlen

import "errors"

// ErrEmptyInput indicates the input string has length 0.
var ErrEmptyInput = errors.New("runlen: input must be non-empty")
