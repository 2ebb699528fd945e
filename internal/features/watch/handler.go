package watch

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tsnthiago/viewstats/internal/catalog"
	"github.com/tsnthiago/viewstats/internal/transcript"
	"github.com/tsnthiago/viewstats/internal/ui"
)

// Handler serves the watch page. A missing video is a terminal state with a
// way home; a transient backend failure offers a retry of the same URL.
func Handler(client *catalog.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := strings.TrimSpace(c.QueryParam("v"))
		if id == "" {
			return c.Redirect(http.StatusFound, "/")
		}

		video, err := client.Video(c.Request().Context(), id)
		if errors.Is(err, catalog.ErrNotFound) {
			return c.HTML(http.StatusNotFound, ui.RenderNotFound())
		}
		if err != nil {
			return c.HTML(http.StatusBadGateway, ui.RenderError(c.Request().RequestURI))
		}

		// The sync script binary-searches segments by time, so the
		// transcript must be ordered and overlap-free before rendering.
		video.Transcript = transcript.Sanitize(video.Transcript)

		return c.HTML(http.StatusOK, ui.RenderWatch(ui.WatchPage{
			Video: video,
			Query: strings.TrimSpace(c.QueryParam("q")),
		}))
	}
}
