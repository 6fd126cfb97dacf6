package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the flight offers domain. Callers should test for
// them with errors.Is (or the Is* helpers below) rather than comparing
// directly, since they are usually wrapped with context.
var (
	// ErrInvalidRequest indicates the search criteria failed validation.
	ErrInvalidRequest = errors.New("invalid search request")

	// ErrAllProvidersFailed indicates every configured provider failed,
	// including the static fallback.
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrProviderTimeout indicates a provider did not answer in time.
	ErrProviderTimeout = errors.New("provider timed out")

	// ErrProviderUnavailable indicates a provider rejected the request
	// or could not be reached.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrSessionNotFound indicates the filter session does not exist or
	// has expired.
	ErrSessionNotFound = errors.New("filter session not found")
)

// ProviderError wraps an error from a specific flight-offers provider,
// carrying the provider name and whether a retry is worthwhile.
type ProviderError struct {
	// Provider is the name of the provider that produced the error.
	Provider string

	// Err is the underlying error.
	Err error

	// Retryable indicates whether retrying the call may succeed.
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable ProviderError.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a ProviderError that is safe to retry,
// such as a transient network failure or an upstream 5xx.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// NewProviderTimeoutError creates a retryable ProviderError wrapping
// ErrProviderTimeout.
func NewProviderTimeoutError(provider string) *ProviderError {
	return &ProviderError{Provider: provider, Err: ErrProviderTimeout, Retryable: true}
}

// NewProviderUnavailableError creates a ProviderError wrapping
// ErrProviderUnavailable.
func NewProviderUnavailableError(provider string) *ProviderError {
	return &ProviderError{Provider: provider, Err: ErrProviderUnavailable}
}

// ValidationError describes a single invalid field in a request.
type ValidationError struct {
	// Field is the name of the invalid field.
	Field string `json:"field"`

	// Message explains why the field is invalid.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidationErrors collects every invalid field found in a request, so
// clients see all problems at once instead of fixing them one at a time.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Error()
}

// Is makes errors.Is(err, ErrInvalidRequest) succeed for validation errors.
func (v *ValidationErrors) Is(target error) bool {
	return target == ErrInvalidRequest
}

// Add appends a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a field -> message map for API
// responses.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// WrapInvalidRequest wraps a formatted message in ErrInvalidRequest so it
// can be detected with IsInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is, or wraps, ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsAllProvidersFailed reports whether err is, or wraps, ErrAllProvidersFailed.
func IsAllProvidersFailed(err error) bool {
	return errors.Is(err, ErrAllProvidersFailed)
}

// IsProviderTimeout reports whether err is, or wraps, ErrProviderTimeout.
func IsProviderTimeout(err error) bool {
	return errors.Is(err, ErrProviderTimeout)
}

// IsSessionNotFound reports whether err is, or wraps, ErrSessionNotFound.
func IsSessionNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}
