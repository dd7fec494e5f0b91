package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Default circuit breaker settings.
const (
	defaultBreakerMaxFailures uint32        = 5
	defaultBreakerTimeout     time.Duration = 30 * time.Second
	defaultBreakerInterval    time.Duration = 60 * time.Second
)

// BreakerConfig configures a BreakerSubmitter.
type BreakerConfig struct {
	// MaxFailures is the number of consecutive failures before the circuit
	// opens.
	MaxFailures uint32

	// Timeout is how long the circuit stays open before a half-open probe.
	Timeout time.Duration

	// Interval is the cyclic period of the closed state for clearing
	// failure counts. If 0, failures never reset until the circuit opens.
	Interval time.Duration
}

// BreakerSubmitter wraps a Submitter with a circuit breaker. When the
// endpoint fails repeatedly the circuit opens and submissions fail fast
// without a network round trip. It performs no retries of its own.
type BreakerSubmitter struct {
	inner   Submitter
	breaker *gobreaker.CircuitBreaker[*Receipt]
}

// NewBreakerSubmitter wraps inner with a circuit breaker. Zero config
// fields fall back to defaults.
func NewBreakerSubmitter(inner Submitter, cfg BreakerConfig, logger *slog.Logger) *BreakerSubmitter {
	if logger == nil {
		logger = slog.Default()
	}
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = defaultBreakerMaxFailures
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultBreakerTimeout
	}

	cb := gobreaker.NewCircuitBreaker[*Receipt](gobreaker.Settings{
		Name:        "submitter",
		MaxRequests: 1, // allow 1 probe in half-open state
		Interval:    cfg.Interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil
		},
	})

	return &BreakerSubmitter{inner: inner, breaker: cb}
}

// Submit implements Submitter. Calls are routed through the circuit breaker.
func (b *BreakerSubmitter) Submit(ctx context.Context, payload []byte, signature string) (*Receipt, error) {
	receipt, err := b.breaker.Execute(func() (*Receipt, error) {
		return b.inner.Submit(ctx, payload, signature)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("submitter circuit open: %w", err)
		}
		return nil, err
	}
	return receipt, nil
}
