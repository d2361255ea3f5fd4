package sampledata

import "errors"

// Sentinel errors.
var (
	ErrInvalidConfig = errors.New("invalid sample config")
	ErrVerification  = errors.New("ranking verification failed")
)
