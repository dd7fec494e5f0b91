package crptgate

import "errors"

var (
	// Document errors
	ErrMissingDocID    = errors.New("document is missing doc_id")
	ErrInvalidINN      = errors.New("invalid INN")
	ErrInvalidDateTime = errors.New("invalid date-time value")

	// Submission errors
	ErrEmptySignature = errors.New("signature cannot be empty")
)
