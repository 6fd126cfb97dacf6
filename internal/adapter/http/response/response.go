// Package response provides standardized HTTP response builders for the
// flight offers API. It centralizes envelope formatting to ensure
// consistency across all endpoints.
package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farescope/flight-offers-service/internal/adapter/http/middleware"
)

// Response represents a standardized API response envelope.
type Response struct {
	// Success indicates whether the request was successful
	Success bool `json:"success"`

	// Data contains the response payload (for successful responses)
	Data interface{} `json:"data,omitempty"`

	// Error contains error details (for error responses)
	Error *ErrorDetail `json:"error,omitempty"`

	// Meta carries request correlation data
	Meta Meta `json:"meta"`
}

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Meta identifies the request a response belongs to.
type Meta struct {
	// RequestID echoes the X-Request-ID assigned to the request
	RequestID string `json:"request_id,omitempty"`

	// Timestamp is when the response was written, RFC 3339 UTC
	Timestamp string `json:"timestamp"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeNotFound           = "not_found"
	CodeServiceUnavailable = "service_unavailable"
	CodeTimeout            = "timeout"
	CodeInternalError      = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgSessionNotFound    = "Session not found or expired"
	MsgServiceUnavailable = "All flight providers are currently unavailable"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

func newMeta(c echo.Context) Meta {
	return Meta{
		RequestID: middleware.GetRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// JSON writes a success envelope with the given status code and data.
func JSON(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, &Response{
		Success: true,
		Data:    data,
		Meta:    newMeta(c),
	})
}

// Fail writes an error envelope with the given status code, error code,
// message and optional field-level details.
func Fail(c echo.Context, statusCode int, code, message string, details map[string]string) error {
	return c.JSON(statusCode, &Response{
		Success: false,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: newMeta(c),
	})
}

// OK writes a 200 OK success envelope with the given data.
func OK(c echo.Context, data interface{}) error {
	return JSON(c, http.StatusOK, data)
}

// NoContent writes a 204 No Content response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
