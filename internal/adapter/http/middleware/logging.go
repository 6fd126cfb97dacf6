package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request once the handler chain finishes:
// method, path, status, duration and client details, tagged with the
// correlation ID. Client errors log at warn, server errors at error.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				// Route the error through Echo now so the logged status is
				// the one the client actually received.
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			event := log.Info()
			switch {
			case res.Status >= http.StatusInternalServerError:
				event = log.Error()
			case res.Status >= http.StatusBadRequest:
				event = log.Warn()
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			// The error was already handled above.
			return nil
		}
	}
}
