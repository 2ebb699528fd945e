package search

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tsnthiago/viewstats/internal/catalog"
)

// Status is the visible result state of the orchestrator.
type Status int

const (
	// StatusLoading means the authoritative request has not resolved yet.
	StatusLoading Status = iota
	// StatusReady means the current page of results is displayable.
	StatusReady
	// StatusNoResults is a successful response with zero matches; it is a
	// distinct display state, not an error.
	StatusNoResults
	// StatusFailed is a network or decode failure.
	StatusFailed
)

// ErrorMessage is the generic user-facing failure text.
const ErrorMessage = "Unable to load data. Please try again later."

// Snapshot is an immutable view of the orchestrator's visible state.
type Snapshot struct {
	State  QueryState
	Status Status
	Videos []catalog.VideoSummary
	Total  int
}

// TotalPages derives the pagination control count from the total and the
// current page size.
func (s Snapshot) TotalPages() int {
	if s.State.PageSize <= 0 {
		return 0
	}
	return (s.Total + s.State.PageSize - 1) / s.State.PageSize
}

// SearchService is the narrow backend surface the state machine needs.
// catalog.Client satisfies it; tests use a fake.
type SearchService interface {
	Search(ctx context.Context, req catalog.SearchRequest) (catalog.ResultPage, error)
	VideosByTopic(ctx context.Context, topicID string, page, limit int) (catalog.ResultPage, error)
}

// Orchestrator reconciles state updates into backend requests. Responses are
// tagged with a monotonically increasing generation captured at dispatch;
// only the newest generation may update the visible snapshot, so a stale
// slow request can never overwrite a fresher result.
type Orchestrator struct {
	svc SearchService
	log zerolog.Logger

	mu         sync.Mutex
	state      QueryState
	gen        uint64
	snap       Snapshot
	dispatched bool
	inflight   chan struct{}
}

// NewOrchestrator starts at the default state with nothing loaded.
func NewOrchestrator(svc SearchService, log zerolog.Logger) *Orchestrator {
	st := DefaultState()
	return &Orchestrator{
		svc:   svc,
		log:   log.With().Str("component", "search").Logger(),
		state: st,
		snap:  Snapshot{State: st, Status: StatusLoading},
	}
}

// Snapshot returns the current visible state.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snap
}

// Apply merges the update and, when it changes the coherent state (or
// nothing was ever fetched), dispatches one backend request. It blocks until
// that request resolves and returns the snapshot current at that moment:
// when a newer Apply supersedes this one mid-flight, the newer outcome wins
// and this call's response is discarded.
func (o *Orchestrator) Apply(ctx context.Context, u Update) Snapshot {
	o.mu.Lock()
	next, changed := apply(o.state, u, o.snap.TotalPages())
	if !changed && o.dispatched {
		// An identical update while a request is in flight joins that
		// request rather than returning the Loading placeholder.
		if o.snap.Status == StatusLoading && o.inflight != nil {
			done := o.inflight
			o.mu.Unlock()
			select {
			case <-done:
			case <-ctx.Done():
			}
			return o.Snapshot()
		}
		// A failed outcome stays retryable: the same state dispatches
		// again instead of pinning the error.
		if o.snap.Status != StatusFailed {
			snap := o.snap
			o.mu.Unlock()
			return snap
		}
	}
	o.state = next
	o.dispatched = true
	o.gen++
	gen := o.gen
	done := make(chan struct{})
	o.inflight = done
	o.snap = Snapshot{State: next, Status: StatusLoading, Total: o.snap.Total}
	o.mu.Unlock()

	page, err := o.dispatch(ctx, next)

	o.mu.Lock()
	defer o.mu.Unlock()
	defer close(done)
	if o.inflight == done {
		o.inflight = nil
	}
	if gen != o.gen {
		// A newer request took over while this one was in flight.
		o.log.Debug().Uint64("generation", gen).Msg("discarding stale response")
		return o.snap
	}

	snap := Snapshot{State: next}
	switch {
	case err != nil:
		o.log.Warn().Err(err).Msg("search request failed")
		snap.Status = StatusFailed
	case len(page.Videos) == 0:
		snap.Status = StatusNoResults
	default:
		if len(page.Videos) > next.PageSize {
			page.Videos = page.Videos[:next.PageSize]
		}
		snap.Status = StatusReady
		snap.Videos = page.Videos
		snap.Total = page.Total
	}
	o.snap = snap
	return snap
}

// dispatch resolves the mode once and issues the matching backend call.
func (o *Orchestrator) dispatch(ctx context.Context, st QueryState) (catalog.ResultPage, error) {
	switch st.Mode() {
	case ModeTopic:
		return o.svc.VideosByTopic(ctx, st.TopicID, st.Page, st.PageSize)
	default:
		return o.svc.Search(ctx, catalog.SearchRequest{
			Query:      st.Text,
			TopK:       st.PageSize,
			Page:       st.Page,
			Limit:      st.PageSize,
			Duration:   st.Filters.Duration,
			UploadDate: st.Filters.UploadDate,
			Language:   st.Filters.Language,
			MinViews:   st.Filters.MinViews,
		})
	}
}
