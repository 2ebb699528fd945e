// Package session keys long-lived per-browser state (search orchestrator,
// suggestion debouncer) on a cookie, so rapid navigation from one browser
// funnels through a single state machine.
package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tsnthiago/viewstats/internal/search"
	"github.com/tsnthiago/viewstats/internal/suggest"
)

// CookieName carries the session id.
const CookieName = "vs_session"

// DefaultIdleTTL is how long an untouched session survives.
const DefaultIdleTTL = 30 * time.Minute

// Handle bundles the per-session components. The factory decides how they
// are built; the registry only tracks lifetime.
type Handle struct {
	Orchestrator *search.Orchestrator
	Debouncer    *suggest.Debouncer
}

// Registry maps session ids to handles with idle eviction.
type Registry struct {
	factory func() *Handle
	idleTTL time.Duration

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	handle   *Handle
	lastSeen time.Time
}

// NewRegistry builds a registry; factory is invoked once per new session.
func NewRegistry(factory func() *Handle, idleTTL time.Duration) *Registry {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Registry{
		factory: factory,
		idleTTL: idleTTL,
		entries: make(map[string]*entry),
	}
}

// Acquire returns the handle for the request's session, minting a new
// session id cookie when none is present. Idle sessions are swept on the
// way through.
func (r *Registry) Acquire(c echo.Context) *Handle {
	id := ""
	if cookie, err := c.Cookie(CookieName); err == nil {
		id = cookie.Value
	}
	if id == "" {
		id = uuid.NewString()
		c.SetCookie(&http.Cookie{
			Name:     CookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return r.acquire(id)
}

func (r *Registry) acquire(id string) *Handle {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	for k, e := range r.entries {
		if now.Sub(e.lastSeen) > r.idleTTL {
			delete(r.entries, k)
		}
	}

	e, ok := r.entries[id]
	if !ok {
		e = &entry{handle: r.factory()}
		r.entries[id] = e
	}
	e.lastSeen = now
	return e.handle
}

// Len reports how many live sessions the registry holds.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
