package transport

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors
	ErrInvalidURL        = errors.New("invalid submission URL")
	ErrUnsupportedScheme = errors.New("URL scheme must be http or https")

	// Operation errors
	ErrRequestFailed = errors.New("submission request failed")
	ErrReadBody      = errors.New("failed to read response body")
)

func NewInvalidURLError(endpoint string, err error) error {
	return fmt.Errorf("%w %q: %w", ErrInvalidURL, endpoint, err)
}

func NewRequestFailedError(endpoint string, err error) error {
	return fmt.Errorf("%w for %q: %w", ErrRequestFailed, endpoint, err)
}

func NewReadBodyError(endpoint string, err error) error {
	return fmt.Errorf("%w for %q: %w", ErrReadBody, endpoint, err)
}
