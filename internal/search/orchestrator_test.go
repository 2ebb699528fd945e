package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsnthiago/viewstats/internal/catalog"
)

type topicCall struct {
	TopicID     string
	Page, Limit int
}

// fakeService records calls and answers through a configurable hook, which
// may block to simulate slow responses.
type fakeService struct {
	mu       sync.Mutex
	searches []catalog.SearchRequest
	topics   []topicCall

	searchHook func(req catalog.SearchRequest) (catalog.ResultPage, error)
	topicHook  func(call topicCall) (catalog.ResultPage, error)
}

func (f *fakeService) Search(_ context.Context, req catalog.SearchRequest) (catalog.ResultPage, error) {
	f.mu.Lock()
	f.searches = append(f.searches, req)
	hook := f.searchHook
	f.mu.Unlock()
	if hook != nil {
		return hook(req)
	}
	return catalog.ResultPage{}, nil
}

func (f *fakeService) VideosByTopic(_ context.Context, topicID string, page, limit int) (catalog.ResultPage, error) {
	call := topicCall{TopicID: topicID, Page: page, Limit: limit}
	f.mu.Lock()
	f.topics = append(f.topics, call)
	hook := f.topicHook
	f.mu.Unlock()
	if hook != nil {
		return hook(call)
	}
	return catalog.ResultPage{}, nil
}

func (f *fakeService) lastSearch(t *testing.T) catalog.SearchRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.searches)
	return f.searches[len(f.searches)-1]
}

func videos(ids ...string) []catalog.VideoSummary {
	out := make([]catalog.VideoSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog.VideoSummary{ID: id, Title: "Video " + id})
	}
	return out
}

func pageOf(total int, ids ...string) (catalog.ResultPage, error) {
	return catalog.ResultPage{Videos: videos(ids...), Total: total}, nil
}

func newTestOrchestrator(svc SearchService) *Orchestrator {
	return NewOrchestrator(svc, zerolog.Nop())
}

func TestTextSearchDispatch(t *testing.T) {
	svc := &fakeService{searchHook: func(catalog.SearchRequest) (catalog.ResultPage, error) {
		return pageOf(8, "a", "b", "c", "d", "e", "f", "g", "h")
	}}
	o := newTestOrchestrator(svc)

	snap := o.Apply(context.Background(), Update{Text: String("ai")})

	req := svc.lastSearch(t)
	assert.Equal(t, "ai", req.Query)
	assert.Empty(t, req.TopicFilter)
	assert.Equal(t, 12, req.TopK)

	assert.Equal(t, StatusReady, snap.Status)
	assert.Equal(t, 8, snap.Total)
	assert.Equal(t, 1, snap.TotalPages(), "8 results at page size 12 is a single page")
}

func TestTopicBrowseDispatchAndEmptyPage(t *testing.T) {
	svc := &fakeService{topicHook: func(topicCall) (catalog.ResultPage, error) {
		return catalog.ResultPage{Videos: nil, Total: 0}, nil
	}}
	o := newTestOrchestrator(svc)

	// Seed enough total so navigating to page 2 is allowed.
	svc.topicHook = func(topicCall) (catalog.ResultPage, error) { return pageOf(60, "x") }
	o.Apply(context.Background(), Update{TopicID: String("science > physics"), PageSize: Int(24)})

	svc.topicHook = func(topicCall) (catalog.ResultPage, error) {
		return catalog.ResultPage{Videos: nil, Total: 0}, nil
	}
	snap := o.Apply(context.Background(), Update{Page: Int(2)})

	svc.mu.Lock()
	last := svc.topics[len(svc.topics)-1]
	svc.mu.Unlock()
	assert.Equal(t, topicCall{TopicID: "science > physics", Page: 2, Limit: 24}, last)

	assert.Equal(t, StatusNoResults, snap.Status, "empty success is no-results, not an error")
	assert.Empty(t, svc.searches, "topic browsing must not hit the search endpoint")
}

func TestTextWinsOverTopic(t *testing.T) {
	svc := &fakeService{}
	o := newTestOrchestrator(svc)

	o.Apply(context.Background(), Update{Text: String("quantum"), TopicID: String("Science")})

	assert.Empty(t, svc.topics)
	assert.Equal(t, "quantum", svc.lastSearch(t).Query)
}

func TestDefaultStateIsEmptyQuerySearch(t *testing.T) {
	svc := &fakeService{}
	o := newTestOrchestrator(svc)

	o.Apply(context.Background(), Update{})

	req := svc.lastSearch(t)
	assert.Empty(t, req.Query)
	assert.Empty(t, req.TopicFilter)
}

func TestFilterChangeResetsPage(t *testing.T) {
	svc := &fakeService{searchHook: func(catalog.SearchRequest) (catalog.ResultPage, error) {
		return pageOf(100, "a")
	}}
	o := newTestOrchestrator(svc)

	o.Apply(context.Background(), Update{Text: String("go")})
	o.Apply(context.Background(), Update{Page: Int(3)})
	require.Equal(t, 3, o.Snapshot().State.Page)

	snap := o.Apply(context.Background(), Update{Filters: &FilterSet{Duration: "short"}})
	assert.Equal(t, 1, snap.State.Page, "filter change must reset pagination")
	assert.Equal(t, "short", svc.lastSearch(t).Duration)
}

func TestPageChangeKeepsOtherDimensions(t *testing.T) {
	svc := &fakeService{searchHook: func(catalog.SearchRequest) (catalog.ResultPage, error) {
		return pageOf(100, "a")
	}}
	o := newTestOrchestrator(svc)

	o.Apply(context.Background(), Update{Text: String("go"), Filters: &FilterSet{Language: "English"}})
	snap := o.Apply(context.Background(), Update{Page: Int(2)})

	assert.Equal(t, "go", snap.State.Text)
	assert.Equal(t, "English", snap.State.Filters.Language)
	assert.Equal(t, 2, snap.State.Page)
}

func TestPageNavigationRejectedOutOfRange(t *testing.T) {
	svc := &fakeService{searchHook: func(catalog.SearchRequest) (catalog.ResultPage, error) {
		return pageOf(30, "a") // 3 pages at size 12
	}}
	o := newTestOrchestrator(svc)
	o.Apply(context.Background(), Update{Text: String("go")})

	before := len(svc.searches)
	o.Apply(context.Background(), Update{Page: Int(0)})
	o.Apply(context.Background(), Update{Page: Int(9)})

	assert.Equal(t, before, len(svc.searches), "out-of-range pages must not dispatch")
	assert.Equal(t, 1, o.Snapshot().State.Page)
}

func TestPageSizeChangeRefetchesPageOne(t *testing.T) {
	svc := &fakeService{searchHook: func(catalog.SearchRequest) (catalog.ResultPage, error) {
		return pageOf(100, "a")
	}}
	o := newTestOrchestrator(svc)

	o.Apply(context.Background(), Update{Text: String("go")})
	o.Apply(context.Background(), Update{Page: Int(3)})
	snap := o.Apply(context.Background(), Update{PageSize: Int(36)})

	assert.Equal(t, 1, snap.State.Page)
	req := svc.lastSearch(t)
	assert.Equal(t, 36, req.TopK)
	assert.Equal(t, 1, req.Page)
}

func TestInvalidPageSizeIgnored(t *testing.T) {
	svc := &fakeService{}
	o := newTestOrchestrator(svc)

	o.Apply(context.Background(), Update{Text: String("go")})
	before := len(svc.searches)

	snap := o.Apply(context.Background(), Update{PageSize: Int(17)})
	assert.Equal(t, DefaultPageSize, snap.State.PageSize)
	assert.Equal(t, before, len(svc.searches))
}

func TestFailureIsDistinctFromNoResults(t *testing.T) {
	svc := &fakeService{searchHook: func(catalog.SearchRequest) (catalog.ResultPage, error) {
		return catalog.ResultPage{}, errors.New("backend down")
	}}
	o := newTestOrchestrator(svc)

	snap := o.Apply(context.Background(), Update{Text: String("go")})
	assert.Equal(t, StatusFailed, snap.Status)

	svc.mu.Lock()
	svc.searchHook = func(catalog.SearchRequest) (catalog.ResultPage, error) {
		return catalog.ResultPage{}, nil
	}
	svc.mu.Unlock()

	snap = o.Apply(context.Background(), Update{Text: String("golang")})
	assert.Equal(t, StatusNoResults, snap.Status)
}

func TestFailedStateRedispatchesOnIdenticalUpdate(t *testing.T) {
	calls := 0
	svc := &fakeService{searchHook: func(req catalog.SearchRequest) (catalog.ResultPage, error) {
		calls++
		if calls == 1 {
			return catalog.ResultPage{}, errors.New("backend down")
		}
		return pageOf(1, "v1")
	}}
	o := newTestOrchestrator(svc)

	snap := o.Apply(context.Background(), Update{Text: String("go")})
	require.Equal(t, StatusFailed, snap.Status)

	// Reloading the same URL re-applies the identical update; the failure
	// must not be pinned.
	snap = o.Apply(context.Background(), Update{Text: String("go")})
	assert.Equal(t, StatusReady, snap.Status)
	assert.Equal(t, 2, calls)
}

func TestIdenticalUpdateJoinsInFlightRequest(t *testing.T) {
	arrived := make(chan string, 1)
	release := make(chan struct{})
	svc := &fakeService{searchHook: func(req catalog.SearchRequest) (catalog.ResultPage, error) {
		arrived <- req.Query
		<-release
		return pageOf(1, "v1")
	}}
	o := newTestOrchestrator(svc)

	first := make(chan Snapshot, 1)
	go func() {
		first <- o.Apply(context.Background(), Update{Text: String("go")})
	}()
	requireArrival(t, arrived, "go")

	// A duplicate request mid-flight waits for the outcome instead of
	// rendering the Loading placeholder.
	second := make(chan Snapshot, 1)
	go func() {
		second <- o.Apply(context.Background(), Update{Text: String("go")})
	}()

	close(release)
	for _, ch := range []chan Snapshot{first, second} {
		select {
		case snap := <-ch:
			assert.Equal(t, StatusReady, snap.Status)
		case <-time.After(time.Second):
			t.Fatal("apply did not resolve")
		}
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	assert.Len(t, svc.searches, 1, "the duplicate must not dispatch its own request")
}

func TestStaleResponseDiscarded(t *testing.T) {
	arrived := make(chan string, 2)
	release := map[string]chan struct{}{
		"slow": make(chan struct{}),
		"fast": make(chan struct{}),
	}
	svc := &fakeService{searchHook: func(req catalog.SearchRequest) (catalog.ResultPage, error) {
		arrived <- req.Query
		<-release[req.Query]
		return pageOf(1, req.Query)
	}}
	o := newTestOrchestrator(svc)

	var wg sync.WaitGroup
	var slowSnap, fastSnap Snapshot

	wg.Add(1)
	go func() {
		defer wg.Done()
		slowSnap = o.Apply(context.Background(), Update{Text: String("slow")})
	}()
	requireArrival(t, arrived, "slow")

	wg.Add(1)
	go func() {
		defer wg.Done()
		fastSnap = o.Apply(context.Background(), Update{Text: String("fast")})
	}()
	requireArrival(t, arrived, "fast")

	// The newer request resolves first, then the stale one limps home.
	close(release["fast"])
	time.Sleep(20 * time.Millisecond)
	close(release["slow"])
	wg.Wait()

	assert.Equal(t, StatusReady, fastSnap.Status)
	require.Len(t, fastSnap.Videos, 1)
	assert.Equal(t, "fast", fastSnap.Videos[0].ID)

	// The superseded call observes the newer outcome, not its own.
	require.Len(t, slowSnap.Videos, 1)
	assert.Equal(t, "fast", slowSnap.Videos[0].ID)

	final := o.Snapshot()
	assert.Equal(t, "fast", final.State.Text)
	require.Len(t, final.Videos, 1)
	assert.Equal(t, "fast", final.Videos[0].ID)
}

func TestResultPageClampedToPageSize(t *testing.T) {
	svc := &fakeService{searchHook: func(catalog.SearchRequest) (catalog.ResultPage, error) {
		ids := make([]string, 20)
		for i := range ids {
			ids[i] = string(rune('a' + i))
		}
		return pageOf(20, ids...)
	}}
	o := newTestOrchestrator(svc)

	snap := o.Apply(context.Background(), Update{Text: String("go")})
	assert.Len(t, snap.Videos, DefaultPageSize)
}

func requireArrival(t *testing.T, arrived <-chan string, want string) {
	t.Helper()
	select {
	case got := <-arrived:
		require.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %q to reach the backend", want)
	}
}
