// Package http provides swagger type definitions for API documentation.
// These types mirror the response envelope so swag generates accurate
// schemas for enveloped payloads.
package http

// SwaggerMeta carries request correlation data.
// @Description Request correlation metadata
type SwaggerMeta struct {
	// RequestID echoes the X-Request-ID assigned to the request
	RequestID string `json:"request_id,omitempty" example:"4b9e2c1a-22d5-4e83-9c5b-0c40e2fd9a11"`

	// Timestamp is when the response was written
	Timestamp string `json:"timestamp" example:"2026-01-15T10:30:00Z"`
}

// SwaggerSearchEnvelope wraps a search response.
// @Description Successful search response
type SwaggerSearchEnvelope struct {
	// Success is always true for successful responses
	Success bool `json:"success" example:"true"`

	// Data contains the created session and its initial view
	Data SearchResponseDTO `json:"data"`

	// Meta contains request correlation metadata
	Meta SwaggerMeta `json:"meta"`
}

// SwaggerViewEnvelope wraps a session view response.
// @Description Successful session view response
type SwaggerViewEnvelope struct {
	// Success is always true for successful responses
	Success bool `json:"success" example:"true"`

	// Data contains the session view under the current filter state
	Data ViewDTO `json:"data"`

	// Meta contains request correlation metadata
	Meta SwaggerMeta `json:"meta"`
}

// SwaggerErrorResponse represents an error response.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Success is always false for error responses
	Success bool `json:"success" example:"false"`

	// Error contains error details
	Error SwaggerErrorDetail `json:"error"`

	// Meta contains request correlation metadata
	Meta SwaggerMeta `json:"meta"`
}

// SwaggerErrorDetail contains structured error information.
// @Description Error details
type SwaggerErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
