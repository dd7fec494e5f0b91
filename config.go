package crptgate

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ajiwo/crptgate/journal"
	"github.com/ajiwo/crptgate/throttle"
	"github.com/ajiwo/crptgate/transport"
)

// Config defines the configuration for a Client. Limit and Window are
// required; everything else has a usable default.
type Config struct {
	// BaseURL is the submission endpoint. Empty selects transport.DefaultURL.
	BaseURL string

	// Limit is the maximum number of submissions per rolling window.
	Limit int

	// Window is the rolling window length.
	Window time.Duration

	// Tick overrides the permit reclaimer's wake-up interval. Zero selects
	// the throttle package default.
	Tick time.Duration

	// HTTPClient overrides the HTTP client used by the default submitter.
	HTTPClient *http.Client

	// Submitter overrides the transport entirely. When set, BaseURL and
	// HTTPClient are ignored.
	Submitter transport.Submitter

	// Breaker, when non-nil, wraps the submitter in a circuit breaker.
	Breaker *transport.BreakerConfig

	// Journal, when non-nil, receives one entry per submission outcome.
	Journal journal.Backend

	// Logger receives client diagnostics. Nil selects slog.Default.
	Logger *slog.Logger

	// Registerer, when non-nil, receives the client's metric collectors.
	Registerer prometheus.Registerer
}

// Validate validates the entire configuration. Admission settings are
// checked by the throttle package so construction fails before any
// goroutine starts.
func (c Config) Validate() error {
	return c.throttleConfig().Validate()
}

func (c Config) throttleConfig() throttle.Config {
	return throttle.Config{
		Limit:  c.Limit,
		Window: c.Window,
		Tick:   c.Tick,
	}
}
