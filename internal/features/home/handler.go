package home

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tsnthiago/viewstats/internal/catalog"
	"github.com/tsnthiago/viewstats/internal/taxonomy"
	"github.com/tsnthiago/viewstats/internal/ui"
)

// Handler serves the landing page with the topic sidebar.
func Handler(client *catalog.Client, log zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		page := ui.HomePage{}

		raw, err := client.Taxonomy(c.Request().Context())
		if err == nil {
			page.Tree, err = taxonomy.Build(raw)
		}
		if err != nil {
			log.Warn().Err(err).Msg("taxonomy unavailable for home page")
			page.TreeErr = true
		}

		return c.HTML(http.StatusOK, ui.RenderHome(page))
	}
}
