// Package app wires the HTTP surface: routes, per-session state, logging,
// and metrics.
package app

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/tsnthiago/viewstats/internal/catalog"
	"github.com/tsnthiago/viewstats/internal/features/home"
	"github.com/tsnthiago/viewstats/internal/features/searchpage"
	"github.com/tsnthiago/viewstats/internal/features/style"
	"github.com/tsnthiago/viewstats/internal/features/suggestapi"
	"github.com/tsnthiago/viewstats/internal/features/watch"
	"github.com/tsnthiago/viewstats/internal/platform/metrics"
	"github.com/tsnthiago/viewstats/internal/search"
	"github.com/tsnthiago/viewstats/internal/session"
	"github.com/tsnthiago/viewstats/internal/suggest"
)

// Config tunes the per-session components.
type Config struct {
	SuggestQuiet time.Duration
	SessionTTL   time.Duration
}

// The suggestion script debounces the full interval in the browser, so the
// served debouncer only guards against clients that skip it. Stacking the
// full interval on both sides would double the latency of every fetch.
const defaultSuggestQuiet = 50 * time.Millisecond

// App wires dependencies and exposes the HTTP handler tree.
type App struct {
	echo     *echo.Echo
	sessions *session.Registry
}

// New constructs a fully wired application.
func New(client *catalog.Client, log zerolog.Logger, cfg Config) *App {
	registry := metrics.New()

	if cfg.SuggestQuiet <= 0 {
		cfg.SuggestQuiet = defaultSuggestQuiet
	}

	sessions := session.NewRegistry(func() *session.Handle {
		return &session.Handle{
			Orchestrator: search.NewOrchestrator(client, log),
			Debouncer:    suggest.NewDebouncer(client, cfg.SuggestQuiet, log),
		}
	}, cfg.SessionTTL)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	e.Use(requestLogger(log))

	e.GET("/metrics", registry.Handler())
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/style.css", style.Handler(), registry.Middleware("style"))
	e.GET("/", home.Handler(client, log), registry.Middleware("home"))
	e.GET("/search", searchpage.Handler(client, sessions, log), registry.Middleware("search"))
	e.GET("/watch", watch.Handler(client), registry.Middleware("watch"))
	e.GET("/api/suggest", suggestapi.Handler(sessions), registry.Middleware("suggest"))

	return &App{echo: e, sessions: sessions}
}

// Handler returns the root http.Handler.
func (a *App) Handler() http.Handler {
	return a.echo
}

// Sessions exposes the per-browser registry, mainly for tests.
func (a *App) Sessions() *session.Registry {
	return a.sessions
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			evt := log.Info()
			if err != nil {
				evt = log.Warn().Err(err)
			}
			evt.Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Dur("elapsed", time.Since(start)).
				Msg("request")
			return err
		}
	}
}
