package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers the shared middleware on the Echo instance. Order
// matters: Recover is outermost so panics anywhere below become 500s, and
// RequestID runs before the logger so every log line carries the
// correlation ID. Extra middleware (metrics collection) is registered
// last, closest to the handlers, so it only observes requests that made
// it through the chain.
//
// Call this before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, extra ...echo.MiddlewareFunc) {
	e.Use(Recover(log))
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(extra...)
}
