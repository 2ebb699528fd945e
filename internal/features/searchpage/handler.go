package searchpage

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tsnthiago/viewstats/internal/catalog"
	"github.com/tsnthiago/viewstats/internal/search"
	"github.com/tsnthiago/viewstats/internal/session"
	"github.com/tsnthiago/viewstats/internal/taxonomy"
	"github.com/tsnthiago/viewstats/internal/ui"
)

// Handler serves the results page. Each request is translated into one state
// update against the session's orchestrator, which decides whether a backend
// fetch is needed; the taxonomy loads in parallel.
func Handler(client *catalog.Client, sessions *session.Registry, log zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		handle := sessions.Acquire(c)
		update := updateFromParams(c)

		var (
			snap    search.Snapshot
			tree    []taxonomy.Node
			treeErr bool
		)
		g, ctx := errgroup.WithContext(c.Request().Context())
		g.Go(func() error {
			snap = handle.Orchestrator.Apply(ctx, update)
			return nil
		})
		g.Go(func() error {
			raw, err := client.Taxonomy(ctx)
			if err == nil {
				tree, err = taxonomy.Build(raw)
			}
			if err != nil {
				log.Warn().Err(err).Msg("taxonomy unavailable for results page")
				treeErr = true
			}
			return nil
		})
		_ = g.Wait()

		return c.HTML(http.StatusOK, ui.RenderSearch(ui.SearchPage{
			Snapshot: snap,
			Tree:     tree,
			TreeErr:  treeErr,
		}))
	}
}

// updateFromParams maps the URL onto a state update. Text, topic, and
// filters are always asserted so that clearing a dimension in the URL clears
// it in the state; page and page size are asserted only when present, since
// their absence means "keep navigating from where we are".
func updateFromParams(c echo.Context) search.Update {
	u := search.Update{
		Text:    search.String(c.QueryParam("q")),
		TopicID: search.String(c.QueryParam("topic")),
		Filters: &search.FilterSet{
			Duration:   c.QueryParam("duration"),
			UploadDate: c.QueryParam("uploadDate"),
			Language:   c.QueryParam("language"),
			MinViews:   intParam(c, "minViews"),
		},
	}
	if p := c.QueryParam("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			u.Page = search.Int(n)
		}
	}
	if p := c.QueryParam("pageSize"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			u.PageSize = search.Int(n)
		}
	}
	return u
}

func intParam(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}
