package style

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tsnthiago/viewstats/internal/ui"
)

// Handler returns the base CSS stylesheet.
func Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Blob(http.StatusOK, "text/css; charset=utf-8", []byte(ui.RenderStyle()))
	}
}
