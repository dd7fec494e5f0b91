// Package journal records submission outcomes. Recording is best-effort by
// contract: callers log failures and move on, and nothing stored here feeds
// back into admission control.
package journal

import (
	"context"
	"time"
)

// Entry is one recorded submission outcome.
type Entry struct {
	// DocID is the submitted document's identifier.
	DocID string `json:"doc_id"`

	// Status is the HTTP status code, or 0 when the request never
	// completed.
	Status int `json:"status"`

	// Attempted is when the submission was dispatched.
	Attempted time.Time `json:"attempted"`

	// Err holds the transport error text, empty on a completed request.
	Err string `json:"err,omitempty"`
}

// Backend is a sink for submission outcomes.
type Backend interface {
	// Record stores one entry.
	Record(ctx context.Context, entry Entry) error

	// Close releases resources held by the backend.
	Close() error
}
