// Package middleware wires the HTTP cross-cutting concerns: request
// correlation, request logging and panic recovery.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader carries the correlation ID between client and server.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the echo context key the correlation ID is stored under.
const requestIDKey = "request_id"

// RequestID assigns every request a correlation ID. An ID supplied by the
// client through the X-Request-ID header is kept, otherwise a fresh UUID
// is generated. The ID is stored on the context and echoed in the response
// header so clients can correlate responses with server logs.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			c.Set(requestIDKey, id)
			c.Response().Header().Set(RequestIDHeader, id)

			return next(c)
		}
	}
}

// GetRequestID returns the correlation ID assigned by RequestID, or an
// empty string when the middleware has not run for this request.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
