package suggestapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tsnthiago/viewstats/internal/catalog"
	"github.com/tsnthiago/viewstats/internal/session"
)

type response struct {
	Suggestions []catalog.Suggestion `json:"suggestions"`
}

// Handler returns JSON autocomplete entries. The session's debouncer decides
// whether this keystroke ever reaches the backend; superseded requests get
// 204 so the client keeps whatever a newer request paints.
func Handler(sessions *session.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		q := strings.TrimSpace(c.QueryParam("q"))
		handle := sessions.Acquire(c)

		items, ok := handle.Debouncer.Query(c.Request().Context(), q)
		if !ok {
			return c.NoContent(http.StatusNoContent)
		}
		if items == nil {
			items = []catalog.Suggestion{}
		}
		return c.JSON(http.StatusOK, response{Suggestions: items})
	}
}
