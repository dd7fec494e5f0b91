package throttle

import (
	"fmt"
	"time"
)

// DefaultTickDivisor sets the reclaimer tick to a fraction of the window
// when no explicit tick is configured.
const DefaultTickDivisor = 100

// MinTick is the floor for the reclaimer tick interval.
const MinTick = time.Millisecond

// Config defines the admission window for a Gate. It is fixed at
// construction and never mutated afterwards.
type Config struct {
	// Limit is the maximum number of admissions per rolling window.
	Limit int

	// Window is the length of the rolling window.
	Window time.Duration

	// Tick is the reclaimer wake-up interval. Zero selects a default of
	// Window/DefaultTickDivisor, clamped to MinTick.
	Tick time.Duration
}

// Validate checks the configuration for construction-time errors.
func (c Config) Validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, c.Limit)
	}
	if c.Window <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidWindow, c.Window)
	}
	if c.Tick < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidTick, c.Tick)
	}
	return nil
}

// withDefaults returns a copy of the config with the tick interval resolved.
func (c Config) withDefaults() Config {
	if c.Tick == 0 {
		c.Tick = c.Window / DefaultTickDivisor
		if c.Tick < MinTick {
			c.Tick = MinTick
		}
	}
	return c
}
