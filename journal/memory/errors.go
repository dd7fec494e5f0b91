package memory

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned for a negative ring capacity.
	ErrInvalidCapacity = errors.New("memory journal capacity cannot be negative")
)

func NewInvalidCapacityError(capacity int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
}
