package throttle

import "errors"

var (
	// Configuration errors
	ErrInvalidLimit  = errors.New("admission limit must be positive")
	ErrInvalidWindow = errors.New("window duration must be positive")
	ErrInvalidTick   = errors.New("tick interval cannot be negative")
)
