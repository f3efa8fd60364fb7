package logic

import "errors"

var (
	// ErrInvalidInput marks caller mistakes that must not be retried
	// unmodified: non-positive amounts, empty identifiers, unknown
	// time windows.
	ErrInvalidInput = errors.New("invalid input")
)
