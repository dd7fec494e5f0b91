package journal

import "errors"

var (
	// ErrBackendNotFound is returned when attempting to create a backend with an unknown name.
	ErrBackendNotFound = errors.New("journal backend not found")

	// ErrInvalidConfig is returned when the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid journal backend configuration")
)
