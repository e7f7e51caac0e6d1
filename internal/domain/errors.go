package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidFormat and ErrPrefixOutOfRange both match ErrInvalidInput
	// so the transport layer only needs one check for the 400 path.
	ErrInvalidFormat    = fmt.Errorf("%w: malformed address", ErrInvalidInput)
	ErrPrefixOutOfRange = fmt.Errorf("%w: prefix out of range", ErrInvalidInput)
)
