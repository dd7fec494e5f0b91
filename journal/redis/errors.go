package redis

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors
	ErrInvalidConfig    = errors.New("redis journal backend requires redis.Config")
	ErrConnectionFailed = errors.New("failed to connect to redis")

	// Operation errors
	ErrEncodeFailed = errors.New("failed to encode journal entry")
	ErrRecordFailed = errors.New("failed to record journal entry")
	ErrCloseFailed  = errors.New("failed to close redis connection")
)

func NewConnectionFailedError(addr string, err error) error {
	return fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
}

func NewEncodeFailedError(docID string, err error) error {
	return fmt.Errorf("failed to encode journal entry for document '%s': %w", docID, err)
}

func NewRecordFailedError(key string, err error) error {
	return fmt.Errorf("failed to record journal entry to '%s': %w", key, err)
}

func NewCloseFailedError(err error) error {
	return fmt.Errorf("failed to close redis connection: %w", err)
}
