package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/tsnthiago/viewstats/internal/app"
	"github.com/tsnthiago/viewstats/internal/catalog"
)

type options struct {
	Listen       string        `short:"l" long:"listen" env:"VS_LISTEN" default:":8080" description:"address to listen on"`
	BackendURL   string        `short:"b" long:"backend" env:"VS_BACKEND_URL" default:"http://localhost:8000" description:"ranking backend base URL"`
	SuggestQuiet time.Duration `long:"suggest-quiet" env:"VS_SUGGEST_QUIET" default:"50ms" description:"server-side autocomplete debounce; the browser debounces the full interval separately"`
	SessionTTL   time.Duration `long:"session-ttl" env:"VS_SESSION_TTL" default:"30m" description:"idle session lifetime"`
	Debug        bool          `long:"debug" env:"VS_DEBUG" description:"enable debug logging"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	client := catalog.New(opts.BackendURL, log)
	application := app.New(client, log, app.Config{
		SuggestQuiet: opts.SuggestQuiet,
		SessionTTL:   opts.SessionTTL,
	})

	srv := &http.Server{
		Addr:              opts.Listen,
		Handler:           application.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("listen", opts.Listen).Str("backend", opts.BackendURL).Msg("server starting")
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown incomplete")
		}
	}
}
