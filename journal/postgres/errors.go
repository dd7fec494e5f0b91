package postgres

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors
	ErrInvalidConfig     = errors.New("postgres journal backend requires postgres.Config")
	ErrInvalidConnString = errors.New("invalid postgres connection string")
	ErrPoolCreate        = errors.New("failed to create connection pool")
	ErrPingFailed        = errors.New("failed to ping database")
	ErrCreateTable       = errors.New("failed to create journal table")

	// Operation errors
	ErrRecordFailed = errors.New("failed to record journal entry")
)

func NewInvalidConnStringError(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidConnString, err)
}

func NewPoolCreateError(err error) error {
	return fmt.Errorf("%w: %w", ErrPoolCreate, err)
}

func NewPingFailedError(err error) error {
	return fmt.Errorf("%w: %w", ErrPingFailed, err)
}

func NewCreateTableError(err error) error {
	return fmt.Errorf("%w: %w", ErrCreateTable, err)
}

func NewRecordFailedError(docID string, err error) error {
	return fmt.Errorf("%w for document '%s': %w", ErrRecordFailed, docID, err)
}
