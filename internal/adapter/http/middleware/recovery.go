package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// stackBufferSize bounds the stack trace captured on panic.
const stackBufferSize = 4 << 10

// Recover turns a panic anywhere in the handler chain into a logged 500
// response, so one bad request cannot take the server down. The panic
// value and a truncated stack trace are logged under the correlation ID;
// the client receives a generic error envelope with no internal details.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				msg := fmt.Sprintf("%v", r)
				if err, ok := r.(error); ok {
					msg = err.Error()
				}

				buf := make([]byte, stackBufferSize)
				n := runtime.Stack(buf, false)

				reqID := GetRequestID(c)
				log.Error().
					Str("request_id", reqID).
					Str("panic", msg).
					Str("stack", string(buf[:n])).
					Msg("Panic recovered")

				if c.Response().Committed {
					return
				}

				// The envelope is built inline: the response package depends
				// on this one for the correlation ID, so it cannot be
				// imported here.
				_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
					"success": false,
					"error": map[string]string{
						"code":    "internal_error",
						"message": "An unexpected error occurred",
					},
					"meta": map[string]string{
						"request_id": reqID,
						"timestamp":  time.Now().UTC().Format(time.RFC3339),
					},
				})
			}()

			return next(c)
		}
	}
}
