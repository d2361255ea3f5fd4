package loader

import "errors"

// Sentinel errors.
var (
	ErrLoadDataset   = errors.New("load dataset failed")
	ErrMissingColumn = errors.New("missing required column")
)
