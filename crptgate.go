// Package crptgate is a rate-limited client for the CRPT document-creation
// endpoint. Submissions block until admitted by a sliding-window gate, then
// perform exactly one signed HTTP POST. The admission permit is returned by
// elapsed time only; call outcome and duration never influence it.
package crptgate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ajiwo/crptgate/journal"
	"github.com/ajiwo/crptgate/throttle"
	"github.com/ajiwo/crptgate/transport"
)

// Client submits documents through an admission gate
type Client struct {
	config    Config
	gate      *throttle.Gate
	submitter transport.Submitter
	journal   journal.Backend
	logger    *slog.Logger
	metrics   *clientMetrics
	closeOnce sync.Once
	closeErr  error
}

// New creates a new client with functional options. WithLimit is required;
// a non-positive limit or window fails construction before any background
// work starts.
func New(opts ...Option) (*Client, error) {
	// Create default configuration
	config := Config{
		BaseURL: transport.DefaultURL,
	}

	// Apply provided options
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return newClient(config)
}

// newClient creates a new client from a finished configuration
func newClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	submitter := config.Submitter
	if submitter == nil {
		var err error
		submitter, err = transport.NewHTTPSubmitter(transport.HTTPConfig{
			URL:    config.BaseURL,
			Client: config.HTTPClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create submitter: %w", err)
		}
	}
	if config.Breaker != nil {
		submitter = transport.NewBreakerSubmitter(submitter, *config.Breaker, logger)
	}

	var metrics *clientMetrics
	if config.Registerer != nil {
		var err error
		metrics, err = newClientMetrics(config.Registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	gate, err := throttle.New(config.throttleConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create admission gate: %w", err)
	}

	return &Client{
		config:    config,
		gate:      gate,
		submitter: submitter,
		journal:   config.Journal,
		logger:    logger,
		metrics:   metrics,
	}, nil
}

// CreateDocument submits one document with its detached signature. It
// blocks until the gate admits the call, then performs a single POST and
// returns the uninterpreted receipt. A non-2xx status is reported through
// the receipt, not as an error; use Receipt.OK to branch on it.
//
// Encode and transport failures are returned to the caller and are not
// retried. They have no effect on admission accounting: the consumed permit
// expires with the window either way.
func (c *Client) CreateDocument(ctx context.Context, doc Document, signature string) (*transport.Receipt, error) {
	if signature == "" {
		return nil, ErrEmptySignature
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document '%s': %w", doc.DocID, err)
	}

	waitStart := time.Now()
	if err := c.gate.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("admission aborted for document '%s': %w", doc.DocID, err)
	}
	waited := time.Since(waitStart)
	c.metrics.observeAdmission(waited)
	c.logger.Debug("admission granted",
		"doc_id", doc.DocID,
		"waited", waited,
	)

	receipt, err := c.submitter.Submit(ctx, payload, signature)
	c.record(ctx, doc.DocID, receipt, err)
	if err != nil {
		return nil, fmt.Errorf("submission failed for document '%s': %w", doc.DocID, err)
	}

	if receipt.OK() {
		c.logger.Debug("document submitted",
			"doc_id", doc.DocID,
			"status", receipt.StatusCode,
		)
	} else {
		c.logger.Warn("document submission rejected",
			"doc_id", doc.DocID,
			"status", receipt.StatusCode,
		)
	}

	return receipt, nil
}

// Gate exposes the underlying admission gate, mainly for observability.
func (c *Client) Gate() *throttle.Gate {
	return c.gate
}

// Close stops the permit reclaimer and closes the journal. It is safe to
// call more than once. Callers still blocked in CreateDocument are not
// woken; cancel their contexts before closing.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.gate.Close()
		if c.journal != nil {
			if err := c.journal.Close(); err != nil && c.closeErr == nil {
				c.closeErr = err
			}
		}
	})
	return c.closeErr
}

// record journals one submission outcome. Journaling is best-effort:
// failures are logged and never surfaced to the caller.
func (c *Client) record(ctx context.Context, docID string, receipt *transport.Receipt, submitErr error) {
	status := 0
	if receipt != nil {
		status = receipt.StatusCode
	}
	c.metrics.observeSubmission(status)

	if c.journal == nil {
		return
	}

	entry := journal.Entry{
		DocID:     docID,
		Status:    status,
		Attempted: time.Now(),
	}
	if submitErr != nil {
		entry.Err = submitErr.Error()
	}

	// The outcome is recorded even when ctx was cancelled mid-submission.
	if err := c.journal.Record(context.WithoutCancel(ctx), entry); err != nil {
		c.logger.Warn("failed to journal submission outcome",
			"doc_id", docID,
			"error", err,
		)
	}
}
