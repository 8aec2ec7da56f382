package ndarray

import "errors"

// Error kinds. Every error returned by this package wraps one of these,
// so callers can match with errors.Is.
var (
	ErrShape          = errors.New("shape error")
	ErrIndex          = errors.New("index error")
	ErrValue          = errors.New("value error")
	ErrDivisionByZero = errors.New("division by zero")
	ErrType           = errors.New("type error")
)
