// Package http provides the HTTP handler layer for the flight offers API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farescope/flight-offers-service/internal/adapter/http/response"
	"github.com/farescope/flight-offers-service/internal/domain"
	"github.com/farescope/flight-offers-service/internal/metrics"
	"github.com/farescope/flight-offers-service/internal/session"
	"github.com/farescope/flight-offers-service/internal/usecase"
)

// SessionStore is the slice of the session store the handlers need.
type SessionStore interface {
	// View returns the current client-facing view of a session.
	View(id string) (domain.SessionView, error)

	// UpdateFilters applies the given filter changes and returns the
	// recomputed view.
	UpdateFilters(id string, changes session.FilterChanges) (domain.SessionView, error)

	// Delete removes a session; deleting an unknown session is a no-op.
	Delete(id string)
}

// HealthInfo describes the service dependencies reported by the health
// endpoint.
type HealthInfo struct {
	// Providers lists the registered provider names in failover order.
	Providers []string

	// Cache names the snapshot cache backend ("redis" or "disabled").
	Cache string
}

// FlightHandler handles HTTP requests for flight-offer endpoints.
type FlightHandler struct {
	search   usecase.SearchUseCase
	sessions SessionStore
	health   HealthInfo
}

// NewFlightHandler creates a new FlightHandler over the search use case
// and the session store.
func NewFlightHandler(search usecase.SearchUseCase, sessions SessionStore, health HealthInfo) *FlightHandler {
	return &FlightHandler{
		search:   search,
		sessions: sessions,
		health:   health,
	}
}

// SearchOffers handles POST /api/v1/flights/search
//
// @Summary Search for flight offers
// @Description Runs a flight-offers search across the provider chain and opens a filter session over the result
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search criteria"
// @Success 200 {object} SwaggerSearchEnvelope
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Failure 502 {object} SwaggerErrorResponse "All providers failed"
// @Failure 504 {object} SwaggerErrorResponse "Upstream timeout"
// @Router /flights/search [post]
func (h *FlightHandler) SearchOffers(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	start := time.Now()
	result, err := h.search.Search(c.Request().Context(), req.ToCriteria())
	if err != nil {
		metrics.RecordSearch(time.Since(start), searchOutcome(err))
		return h.handleError(c, err)
	}

	outcome := "success"
	if result.Cached {
		outcome = "cache_hit"
	}
	metrics.RecordSearch(time.Since(start), outcome)

	return response.OK(c, ToSearchResponseDTO(result))
}

// GetSession handles GET /api/v1/flights/sessions/:id
//
// @Summary Get a filter session's current view
// @Description Returns the session's offers under its current filter state
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SwaggerViewEnvelope
// @Failure 404 {object} SwaggerErrorResponse "Session not found or expired"
// @Router /flights/sessions/{id} [get]
func (h *FlightHandler) GetSession(c echo.Context) error {
	view, err := h.sessions.View(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToViewDTO(view))
}

// UpdateFilters handles PATCH /api/v1/flights/sessions/:id/filters
//
// @Summary Update a session's filters
// @Description Applies a partial filter update and returns the recomputed view
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body UpdateFiltersRequest true "Filter changes"
// @Success 200 {object} SwaggerViewEnvelope
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Failure 404 {object} SwaggerErrorResponse "Session not found or expired"
// @Router /flights/sessions/{id}/filters [patch]
func (h *FlightHandler) UpdateFilters(c echo.Context) error {
	var req UpdateFiltersRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleError(c, err)
	}

	view, err := h.sessions.UpdateFilters(c.Param("id"), req.ToChanges())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToViewDTO(view))
}

// DeleteSession handles DELETE /api/v1/flights/sessions/:id
//
// @Summary Delete a filter session
// @Description Removes the session; deleting an unknown session succeeds
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204 "Session deleted"
// @Router /flights/sessions/{id} [delete]
func (h *FlightHandler) DeleteSession(c echo.Context) error {
	h.sessions.Delete(c.Param("id"))

	return response.NoContent(c)
}

// Health handles GET /health. The endpoint lives at the root, outside
// /api/v1, so load balancers can probe it without the API prefix.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c, h.health.Providers, h.health.Cache)
}

// handleError maps domain errors to HTTP responses. The timeout check runs
// before the all-providers check: a chain aborted by the deadline wraps
// both sentinels, and the timeout is the signal the client can act on.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	var validationErrs *domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	switch {
	case domain.IsProviderTimeout(err) || errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case domain.IsAllProvidersFailed(err):
		return response.UpstreamUnavailable(c)
	case domain.IsSessionNotFound(err):
		return response.NotFound(c, response.MsgSessionNotFound)
	case domain.IsInvalidRequest(err):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	default:
		return response.InternalServerError(c)
	}
}

// searchOutcome classifies a search error for the metrics label. Values
// stay within a small closed set to keep label cardinality bounded.
func searchOutcome(err error) string {
	switch {
	case domain.IsInvalidRequest(err):
		return "invalid"
	case domain.IsProviderTimeout(err) || errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case domain.IsAllProvidersFailed(err):
		return "upstream_failure"
	default:
		return "error"
	}
}
