// Package throttle provides a blocking admission gate with a sliding
// reclamation window.
//
// A Gate holds a fixed pool of permits. Acquire blocks, in arrival order,
// until a permit is free, then records the grant timestamp in an ordered
// ledger. Callers never return their own permits; a background reclaimer
// releases each permit once its timestamp falls out of the rolling window.
// This bounds the number of admissions per rolling window rather than the
// number of concurrent in-flight calls.
package throttle

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// Gate is a counting admission gate with time-driven permit reclamation.
//
// The permit pool and the timestamp ledger are guarded by a single mutex,
// so available + len(ledger) == limit holds at every observable instant.
type Gate struct {
	limit  int
	window time.Duration
	tick   time.Duration

	// sem provides FIFO blocking and context cancellation for waiters.
	// The authoritative permit count is the mutex-guarded available field;
	// the semaphore only orders and parks callers.
	sem *semaphore.Weighted

	mu        sync.Mutex
	available int
	ledger    []time.Time

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// New creates a Gate and starts its background reclaimer.
func New(cfg Config) (*Gate, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	g := &Gate{
		limit:     cfg.Limit,
		window:    cfg.Window,
		tick:      cfg.Tick,
		sem:       semaphore.NewWeighted(int64(cfg.Limit)),
		available: cfg.Limit,
		ledger:    make([]time.Time, 0, cfg.Limit),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}

	go g.reclaim()

	return g, nil
}

// Acquire blocks until a permit is granted or ctx is cancelled. Waiters are
// served in arrival order. On grant the current timestamp is appended to the
// ledger; the permit is returned to the pool by the reclaimer once the
// window has elapsed, regardless of what the caller does afterwards.
//
// A cancelled wait consumes no permit and records no timestamp. Acquire
// imposes no deadline of its own; callers needing one must derive it from
// ctx. The reclaimer must outlive pending admissions: an Acquire still
// blocked when Close is called stays blocked until its context is cancelled.
func (g *Gate) Acquire(ctx context.Context) error {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	g.mu.Lock()
	g.available--
	g.ledger = append(g.ledger, time.Now())
	g.mu.Unlock()

	return nil
}

// Close stops the reclaimer and waits for it to exit. It is safe to call
// more than once.
func (g *Gate) Close() error {
	g.stopOnce.Do(func() {
		close(g.stop)
	})
	<-g.done
	return nil
}

// Limit returns the configured admission ceiling.
func (g *Gate) Limit() int { return g.limit }

// Window returns the configured rolling window length.
func (g *Gate) Window() time.Duration { return g.window }

// Available returns the number of free permits.
func (g *Gate) Available() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.available
}

// Recorded returns the number of ledger entries, i.e. grants whose window
// has not yet elapsed.
func (g *Gate) Recorded() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.ledger)
}

// reclaim runs until Close, releasing permits for ledger entries that have
// aged out of the window.
func (g *Gate) reclaim() {
	defer close(g.done)

	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	for {
		select {
		case <-g.stop:
			return
		case <-ticker.C:
			g.reap(time.Now())
		}
	}
}

// reap removes every ledger entry strictly older than now minus the window
// and returns the matching permits to the pool. The ledger is ordered, so a
// prefix scan from the head suffices.
func (g *Gate) reap(now time.Time) {
	cutoff := now.Add(-g.window)

	g.mu.Lock()
	n := 0
	for n < len(g.ledger) && g.ledger[n].Before(cutoff) {
		n++
	}
	if n > 0 {
		g.ledger = append(g.ledger[:0], g.ledger[n:]...)
		g.available += n
	}
	g.mu.Unlock()

	if n > 0 {
		g.sem.Release(int64(n))
	}
}
