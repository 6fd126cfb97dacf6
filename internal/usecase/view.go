package usecase

import (
	"github.com/farescope/flight-offers-service/internal/domain"
)

// ComputeView projects a snapshot through a filter state into the view a
// client sees. Pure: every field is derived fresh from the inputs.
//
// The filtered offers come from the full pipeline, the price bounds from
// the cohort pipeline (stops and airlines only), the airline facet from
// the whole snapshot, and the best-value pick from the filtered set.
func ComputeView(snapshot *domain.SearchSnapshot, state domain.FilterState) domain.SessionView {
	var offers []domain.Offer
	var dictionaries domain.Dictionaries
	if snapshot != nil {
		offers = snapshot.Offers
		dictionaries = snapshot.Dictionaries
	}

	filtered := ApplyAllFilters(offers, state)
	cohort := ApplyCohortFilters(offers, state.Stops, state.Airlines)
	bestValueID, _ := SelectBestValue(filtered)

	return domain.SessionView{
		Offers:            filtered,
		PriceBounds:       DerivePriceRange(cohort),
		AvailableAirlines: CollectAirlineCodes(offers),
		BestValueID:       bestValueID,
		State:             state,
		Dictionaries:      dictionaries,
	}
}
