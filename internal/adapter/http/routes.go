// Package http provides the HTTP handler layer for the flight offers API.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all flight offers API routes along with the
// operational endpoints.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	// Operational endpoints (no version prefix)
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	api := e.Group("/api/v1")

	// Flights group
	flights := api.Group("/flights")
	flights.POST("/search", h.SearchOffers)
	flights.GET("/sessions/:id", h.GetSession)
	flights.PATCH("/sessions/:id/filters", h.UpdateFilters)
	flights.DELETE("/sessions/:id", h.DeleteSession)
}
