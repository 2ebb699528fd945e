// Package suggest rate-limits autocomplete fetches and models the
// suggestion-panel keyboard contract.
package suggest

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tsnthiago/viewstats/internal/catalog"
)

// Defaults for the debouncer. Inputs shorter than MinQueryLen clear the
// panel immediately instead of fetching.
const (
	DefaultQuiet = 300 * time.Millisecond
	MinQueryLen  = 2
)

// Fetcher provides the raw suggestion lookup. catalog.Client satisfies it.
type Fetcher interface {
	Suggest(ctx context.Context, q string) ([]catalog.Suggestion, error)
}

// Debouncer turns a stream of raw query strings into at most one fetch per
// quiet interval. Each call is tagged with a generation; a newer call
// invalidates every older waiter immediately, and an older fetch that is
// already past the timer cannot publish over a newer result.
type Debouncer struct {
	fetcher Fetcher
	quiet   time.Duration
	log     zerolog.Logger

	mu      sync.Mutex
	gen     uint64
	waiter  chan struct{}
	current []catalog.Suggestion
}

// NewDebouncer builds a debouncer with the given quiet interval; zero means
// DefaultQuiet.
func NewDebouncer(f Fetcher, quiet time.Duration, log zerolog.Logger) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Debouncer{
		fetcher: f,
		quiet:   quiet,
		log:     log.With().Str("component", "suggest").Logger(),
	}
}

// Query registers q as the newest input and blocks until it either settles
// and fetches, or is superseded by a newer input. The second return is false
// for superseded calls, whose results must not be shown. Inputs shorter than
// MinQueryLen resolve instantly to an empty list with no fetch and no wait.
func (d *Debouncer) Query(ctx context.Context, q string) ([]catalog.Suggestion, bool) {
	d.mu.Lock()
	d.gen++
	myGen := d.gen
	if d.waiter != nil {
		close(d.waiter) // invalidate the previous keystroke's timer wait
		d.waiter = nil
	}

	if len([]rune(q)) < MinQueryLen {
		d.current = nil
		d.mu.Unlock()
		return nil, true
	}

	superseded := make(chan struct{})
	d.waiter = superseded
	d.mu.Unlock()

	timer := time.NewTimer(d.quiet)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-superseded:
		return nil, false
	case <-ctx.Done():
		return nil, false
	}

	items, err := d.fetcher.Suggest(ctx, q)
	if err != nil {
		// Suggestions are best-effort; a failed fetch clears the panel.
		d.log.Warn().Err(err).Str("query", q).Msg("suggestion fetch failed")
		items = nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if myGen != d.gen {
		// A newer keystroke owns the panel now.
		return nil, false
	}
	if d.waiter == superseded {
		d.waiter = nil
	}
	d.current = items
	return items, true
}

// Quiet returns the configured quiet interval.
func (d *Debouncer) Quiet() time.Duration {
	return d.quiet
}

// Current returns the last published suggestion list.
func (d *Debouncer) Current() []catalog.Suggestion {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}
