package config

import (
	"errors"
)

// ErrLoadConfig wraps failures reading the YAML file or decoding env values
// in Load. ErrInvalidConfig wraps values rejected by Validate, such as an
// unknown default strategy or unusable metrics settings.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
