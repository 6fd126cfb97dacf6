package usecase

import (
	"math"
	"sort"

	"github.com/farescope/flight-offers-service/internal/domain"
)

// Price-range derivation constants.
const (
	// defaultPriceRangeMax is the upper bound returned for an empty offer
	// list, paired with a lower bound of 0.
	defaultPriceRangeMax = 1000

	// minPriceRangeSpan is the narrowest span a derived range may have;
	// the upper bound is widened to min + span when prices cluster.
	minPriceRangeSpan = 100
)

// DerivePriceRange computes usable price-slider bounds from an offer list.
//
// Behavior:
//   - Empty input yields the fixed default range (0, 1000)
//   - Otherwise the minimum price is floored (clamped to >= 0) and the
//     maximum is ceiled
//   - A span below 100 widens the upper bound to min + 100
//
// The result always satisfies Max - Min >= 100 and Min >= 0.
func DerivePriceRange(offers []domain.Offer) domain.PriceRange {
	if len(offers) == 0 {
		return domain.PriceRange{Min: 0, Max: defaultPriceRangeMax}
	}

	minPrice := math.MaxFloat64
	maxPrice := 0.0
	for _, offer := range offers {
		total := offer.PriceTotal()
		if total < minPrice {
			minPrice = total
		}
		if total > maxPrice {
			maxPrice = total
		}
	}

	lower := math.Floor(minPrice)
	if lower < 0 {
		lower = 0
	}
	upper := math.Ceil(maxPrice)

	if upper-lower < minPriceRangeSpan {
		upper = lower + minPriceRangeSpan
	}

	return domain.PriceRange{Min: lower, Max: upper}
}

// CollectAirlineCodes returns the sorted unique carrier codes across the
// whole offer list. It drives the airline-selection facet shown to
// clients. An empty list yields an empty slice.
func CollectAirlineCodes(offers []domain.Offer) []string {
	seen := make(map[string]struct{})
	codes := []string{}
	for _, offer := range offers {
		for _, code := range offer.AirlineCodes() {
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}
