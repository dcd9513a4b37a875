package oracle

import "errors"

// Sentinel errors for oracle input validation and traceback.
var (
	// ErrEmptyInput indicates Q or T has length 0.
	ErrEmptyInput = errors.New("oracle: Q and T must be non-empty")

	// ErrBadOptions indicates an invalid Mode or Recurrence value.
	ErrBadOptions = errors.New("oracle: invalid options combination")

	// ErrUntraceableCell indicates Traceback found no consistent
	// predecessor for some cell on the path. The numeric distance already
	// computed by Value/LastRow remains valid; only the path is affected.
	ErrUntraceableCell = errors.New("oracle: traceback found no consistent predecessor")
)
