package crptgate

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ajiwo/crptgate/journal"
	"github.com/ajiwo/crptgate/transport"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithLimit sets the admission ceiling and the rolling window it applies to
func WithLimit(limit int, window time.Duration) Option {
	return func(config *Config) error {
		config.Limit = limit
		config.Window = window
		return nil
	}
}

// WithTick overrides the reclaimer tick interval
func WithTick(tick time.Duration) Option {
	return func(config *Config) error {
		config.Tick = tick
		return nil
	}
}

// WithBaseURL sets the submission endpoint URL
func WithBaseURL(baseURL string) Option {
	return func(config *Config) error {
		if baseURL == "" {
			return fmt.Errorf("base URL cannot be empty")
		}
		config.BaseURL = baseURL
		return nil
	}
}

// WithHTTPClient sets the HTTP client used by the default submitter
func WithHTTPClient(client *http.Client) Option {
	return func(config *Config) error {
		if client == nil {
			return fmt.Errorf("HTTP client cannot be nil")
		}
		config.HTTPClient = client
		return nil
	}
}

// WithSubmitter replaces the default HTTP submitter
func WithSubmitter(submitter transport.Submitter) Option {
	return func(config *Config) error {
		if submitter == nil {
			return fmt.Errorf("submitter cannot be nil")
		}
		config.Submitter = submitter
		return nil
	}
}

// WithBreaker wraps the submitter in a circuit breaker
func WithBreaker(breakerConfig transport.BreakerConfig) Option {
	return func(config *Config) error {
		config.Breaker = &breakerConfig
		return nil
	}
}

// WithJournal configures a sink for submission outcomes
func WithJournal(backend journal.Backend) Option {
	return func(config *Config) error {
		if backend == nil {
			return fmt.Errorf("journal backend cannot be nil")
		}
		config.Journal = backend
		return nil
	}
}

// WithLogger sets the logger for client diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(config *Config) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		config.Logger = logger
		return nil
	}
}

// WithMetrics registers the client's collectors on the given registerer
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(config *Config) error {
		if registerer == nil {
			return fmt.Errorf("registerer cannot be nil")
		}
		config.Registerer = registerer
		return nil
	}
}
