package serverpages

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewAssets serves files from dir before the page routes are looked at.
// A request for a file that is not there falls through to the pages.
func NewAssets(dir string) echo.MiddlewareFunc {
	return middleware.StaticWithConfig(middleware.StaticConfig{
		Skipper: func(eCtx echo.Context) bool {
			m := eCtx.Request().Method
			return m != http.MethodGet && m != http.MethodHead
		},
		Root: dir,
	})
}
