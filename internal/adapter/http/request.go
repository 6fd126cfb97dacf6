// Package http provides the HTTP handler layer for the flight offers API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"strings"

	"github.com/farescope/flight-offers-service/internal/domain"
	"github.com/farescope/flight-offers-service/internal/session"
)

// SearchRequest represents the request body for flight search. Field names
// mirror domain.SearchCriteria so validation errors key on the exact names
// the client sent.
type SearchRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "MAD")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "JFK")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format; providing it
	// makes the search round-trip (optional)
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (1-9, defaults to 1)
	Adults int `json:"adults"`

	// CurrencyCode is the preferred ISO 4217 currency code (optional)
	CurrencyCode string `json:"currencyCode,omitempty"`
}

// ToCriteria converts the request into domain search criteria, trimming
// whitespace and normalizing codes to uppercase. Validation itself belongs
// to the criteria and runs inside the search use case.
func (r *SearchRequest) ToCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        strings.ToUpper(strings.TrimSpace(r.Origin)),
		Destination:   strings.ToUpper(strings.TrimSpace(r.Destination)),
		DepartureDate: strings.TrimSpace(r.DepartureDate),
		ReturnDate:    strings.TrimSpace(r.ReturnDate),
		Adults:        r.Adults,
		CurrencyCode:  strings.ToUpper(strings.TrimSpace(r.CurrencyCode)),
	}
}

// UpdateFiltersRequest represents the PATCH body for session filter
// updates. Every field is optional; an absent field leaves that filter
// untouched, so an empty body is a valid no-op.
type UpdateFiltersRequest struct {
	// Stops selects a stop-count criterion: all, nonstop, 1stop, 2plus
	Stops *string `json:"stops,omitempty"`

	// PriceRange bounds the total price, inclusive on both ends
	PriceRange *PriceRangeRequest `json:"price_range,omitempty"`

	// Airlines restricts offers to these carrier codes; an empty list
	// resets the filter to all airlines
	Airlines *[]string `json:"airlines,omitempty"`
}

// PriceRangeRequest is the price window of an UpdateFiltersRequest.
type PriceRangeRequest struct {
	// Min is the lower bound (inclusive)
	Min float64 `json:"min"`

	// Max is the upper bound (inclusive)
	Max float64 `json:"max"`
}

// Validate checks the requested filter changes and returns field-keyed
// validation errors.
func (r *UpdateFiltersRequest) Validate() error {
	errs := &domain.ValidationErrors{}

	if r.Stops != nil && !domain.StopsCriterion(*r.Stops).IsValid() {
		errs.Add("stops", "stops must be one of: all, nonstop, 1stop, 2plus")
	}

	if r.PriceRange != nil {
		if r.PriceRange.Min < 0 {
			errs.Add("price_range.min", "min must be a non-negative number")
		}
		if r.PriceRange.Max < r.PriceRange.Min {
			errs.Add("price_range.max", "max must be greater than or equal to min")
		}
	}

	if r.Airlines != nil {
		for i, code := range *r.Airlines {
			code = strings.TrimSpace(code)
			if len(code) < 2 || len(code) > 3 {
				errs.Add(fmt.Sprintf("airlines[%d]", i), "airline code must be 2 or 3 characters")
			}
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToChanges converts the request into the session store's filter changes.
// Call Validate first; ToChanges assumes a valid request.
func (r *UpdateFiltersRequest) ToChanges() session.FilterChanges {
	var changes session.FilterChanges

	if r.Stops != nil {
		criterion := domain.ParseStopsCriterion(*r.Stops)
		changes.Stops = &criterion
	}

	if r.PriceRange != nil {
		changes.Price = &domain.PriceRange{Min: r.PriceRange.Min, Max: r.PriceRange.Max}
	}

	if r.Airlines != nil {
		selection := domain.SelectAirlines(*r.Airlines...)
		changes.Airlines = &selection
	}

	return changes
}
