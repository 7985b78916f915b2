package lexgo

import "errors"

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrClosed is returned when the index has been closed.
	ErrClosed = errors.New("index is closed")
)
