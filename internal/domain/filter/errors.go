package filter

import "errors"

// Sentinel kinds for filter errors.
var (
	ErrUnknownTable  = errors.New("unknown table")
	ErrUnknownColumn = errors.New("unknown column")
)
