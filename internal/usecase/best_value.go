package usecase

import (
	"sort"

	"github.com/farescope/flight-offers-service/internal/domain"
)

// Best-value heuristic constants.
const (
	// bestValueMaxStops is the most stops a qualifying offer may have.
	bestValueMaxStops = 1

	// bestValueDurationFactor stretches the median duration into the
	// qualifying threshold: duration <= median * factor.
	bestValueDurationFactor = 1.2
)

// offerMetrics caches the derived facts SelectBestValue ranks by, so each
// offer is parsed once.
type offerMetrics struct {
	id       string
	price    float64
	stops    int
	duration int
}

// SelectBestValue picks the single offer recommended as the best value for
// the given list, returning its id.
//
// Algorithm:
//  1. Derive per-offer price, total stops and total duration minutes.
//  2. Take the median duration over the whole input (mean of the two
//     middle values for even counts, upper middle value for odd counts).
//  3. Qualifying offers have stops <= 1 and duration <= median * 1.2.
//  4. Rank the qualifying subset if non-empty, otherwise the full input,
//     so a non-empty list always produces a recommendation.
//  5. Ascending price; ties broken by ascending lexicographic id.
//
// Behavior:
//   - Empty input returns ("", false); every other outcome is ok
//   - Pure and deterministic: identical input (including duplicate
//     prices) always yields the same id
//   - Must be recomputed whenever the filtered list changes; results are
//     never valid across filter states
func SelectBestValue(offers []domain.Offer) (string, bool) {
	if len(offers) == 0 {
		return "", false
	}

	metrics := make([]offerMetrics, len(offers))
	durations := make([]int, len(offers))
	for i, offer := range offers {
		metrics[i] = offerMetrics{
			id:       offer.ID,
			price:    offer.PriceTotal(),
			stops:    offer.TotalStops(),
			duration: offer.TotalDurationMinutes(),
		}
		durations[i] = metrics[i].duration
	}

	threshold := medianDurationMinutes(durations) * bestValueDurationFactor

	qualifying := make([]offerMetrics, 0, len(metrics))
	for _, m := range metrics {
		if m.stops <= bestValueMaxStops && float64(m.duration) <= threshold {
			qualifying = append(qualifying, m)
		}
	}

	// Graceful fallback: rank the whole input rather than coming back
	// empty-handed when nothing qualifies.
	if len(qualifying) == 0 {
		qualifying = metrics
	}

	best := qualifying[0]
	for _, m := range qualifying[1:] {
		if m.price < best.price || (m.price == best.price && m.id < best.id) {
			best = m
		}
	}
	return best.id, true
}

// medianDurationMinutes returns the median of the given durations: the
// mean of the two middle values for an even count, the upper middle value
// for an odd count.
func medianDurationMinutes(durations []int) float64 {
	if len(durations) == 0 {
		return 0
	}

	sorted := append([]int(nil), durations...)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2
	}

	mid := (n + 1) / 2
	if mid == n {
		mid = n - 1
	}
	return float64(sorted[mid])
}
