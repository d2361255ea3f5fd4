package scoring

import "errors"

// Sentinel kinds for scoring errors.
var (
	ErrUnknownStrategy = errors.New("unknown scoring strategy")
	ErrUnknownSubIndex = errors.New("unknown sub-index")
	ErrInvalidWeights  = errors.New("invalid weights")
)
