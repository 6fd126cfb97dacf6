// Package usecase provides the business logic for the flight offers
// service: the pure filtering and ranking core, and the search
// orchestration built on top of it.
package usecase

import (
	"github.com/farescope/flight-offers-service/internal/domain"
)

// FilterByStops keeps the offers whose total stop count matches the
// criterion.
//
// Behavior:
//   - StopsAll (and any unrecognized criterion) is the identity: the input
//     slice is returned unchanged, element for element
//   - StopsNonstop keeps total stops == 0, StopsOne keeps == 1,
//     StopsTwoPlus keeps >= 2
//   - Original relative order is preserved; the input is never mutated
func FilterByStops(offers []domain.Offer, criterion domain.StopsCriterion) []domain.Offer {
	if criterion == domain.StopsAll || !criterion.IsValid() {
		return offers
	}

	result := make([]domain.Offer, 0, len(offers))
	for _, offer := range offers {
		if criterion.Matches(offer.TotalStops()) {
			result = append(result, offer)
		}
	}
	return result
}

// FilterByPrice keeps the offers whose parsed total price lies in
// [min, max], inclusive on both ends. Malformed price strings parse to 0
// and are judged like any other amount.
func FilterByPrice(offers []domain.Offer, min, max float64) []domain.Offer {
	window := domain.PriceRange{Min: min, Max: max}

	result := make([]domain.Offer, 0, len(offers))
	for _, offer := range offers {
		if window.Contains(offer.PriceTotal()) {
			result = append(result, offer)
		}
	}
	return result
}

// FilterByAirlines keeps the offers operated by at least one selected
// carrier.
//
// Behavior:
//   - An all-airlines selection is the identity: the input slice is
//     returned unchanged
//   - A specific set uses OR semantics: a multi-carrier offer passes if
//     any one of its carriers is selected
//   - Original relative order is preserved; the input is never mutated
func FilterByAirlines(offers []domain.Offer, selection domain.AirlineSelection) []domain.Offer {
	if selection.IsAll() {
		return offers
	}

	result := make([]domain.Offer, 0, len(offers))
	for _, offer := range offers {
		if selection.Matches(offer.AirlineCodes()) {
			result = append(result, offer)
		}
	}
	return result
}

// ApplyCohortFilters runs the stops and airline filters only, skipping the
// price filter. The result is the cohort: the offers reachable under the
// current stops/airline selection regardless of where the price slider
// sits. Price bounds are always derived from this cohort, never from the
// fully filtered list.
func ApplyCohortFilters(offers []domain.Offer, criterion domain.StopsCriterion, selection domain.AirlineSelection) []domain.Offer {
	return FilterByAirlines(FilterByStops(offers, criterion), selection)
}

// ApplyAllFilters runs the full pipeline (stops, then price, then
// airlines) and returns the final displayed result set. The three
// predicates are independent intersections, so the fixed order matters
// only for performance.
func ApplyAllFilters(offers []domain.Offer, state domain.FilterState) []domain.Offer {
	result := FilterByStops(offers, state.Stops)
	result = FilterByPrice(result, state.PriceRange.Min, state.PriceRange.Max)
	return FilterByAirlines(result, state.Airlines)
}
