package server

import (
	"github.com/labstack/echo/v4"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/platform/correlation"
)

// correlationMiddleware attaches a fresh correlation ID to each request so
// all log lines for the request can be tied together.
func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := correlation.WithID(c.Request().Context(), correlation.NewID())
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
