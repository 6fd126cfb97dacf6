package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farescope/flight-offers-service/internal/domain"
)

// TestDerivePriceRange_EmptyListDefault tests the fixed fallback range.
func TestDerivePriceRange_EmptyListDefault(t *testing.T) {
	result := DerivePriceRange(nil)

	assert.Equal(t, domain.PriceRange{Min: 0, Max: 1000}, result)
}

// TestDerivePriceRange_FloorsAndCeils tests the rounding of the raw
// min/max prices.
func TestDerivePriceRange_FloorsAndCeils(t *testing.T) {
	offers := []domain.Offer{
		makeOffer("1", "123.45", 0, "PT2H"),
		makeOffer("2", "678.90", 0, "PT2H"),
	}

	result := DerivePriceRange(offers)

	assert.Equal(t, domain.PriceRange{Min: 123, Max: 679}, result)
}

// TestDerivePriceRange_WidensNarrowSpan tests that clustered prices grow
// the upper bound to min + 100.
func TestDerivePriceRange_WidensNarrowSpan(t *testing.T) {
	offers := []domain.Offer{
		makeOffer("1", "200.00", 0, "PT2H"),
		makeOffer("2", "220.00", 0, "PT2H"),
	}

	result := DerivePriceRange(offers)

	assert.Equal(t, domain.PriceRange{Min: 200, Max: 300}, result)
}

// TestDerivePriceRange_SingleOffer tests the degenerate one-price list.
func TestDerivePriceRange_SingleOffer(t *testing.T) {
	offers := []domain.Offer{makeOffer("1", "150.50", 0, "PT2H")}

	result := DerivePriceRange(offers)

	assert.Equal(t, domain.PriceRange{Min: 150, Max: 250}, result)
}

// TestDerivePriceRange_ClampsNegativeMin tests that a negative parsed
// price never produces a negative lower bound.
func TestDerivePriceRange_ClampsNegativeMin(t *testing.T) {
	offers := []domain.Offer{
		makeOffer("refund", "-50.25", 0, "PT2H"),
		makeOffer("normal", "80.00", 0, "PT2H"),
	}

	result := DerivePriceRange(offers)

	assert.Equal(t, 0.0, result.Min)
	assert.GreaterOrEqual(t, result.Span(), 100.0)
}

// DerivePriceRange keeps min at zero or above and the span at 100 or more
// no matter what the offers look like.
func TestDerivePriceRange_BoundsAcrossInputs(t *testing.T) {
	inputs := [][]domain.Offer{
		nil,
		{},
		{makeOffer("1", "0.00", 0, "PT2H")},
		{makeOffer("1", "abc", 0, "PT2H")},
		{makeOffer("1", "99999.99", 0, "PT2H")},
		{makeOffer("1", "10.00", 0, "PT2H"), makeOffer("2", "10.00", 0, "PT2H")},
		{makeOffer("1", "-300.00", 0, "PT2H"), makeOffer("2", "-100.00", 0, "PT2H")},
	}

	for _, offers := range inputs {
		result := DerivePriceRange(offers)
		assert.GreaterOrEqual(t, result.Min, 0.0)
		assert.GreaterOrEqual(t, result.Span(), 100.0)
	}
}

// TestCollectAirlineCodes_SortedUnique tests facet derivation across a
// list with shared and multi-carrier offers.
func TestCollectAirlineCodes_SortedUnique(t *testing.T) {
	offers := []domain.Offer{
		makeOffer("1", "100.00", 0, "PT2H", "LH", "UA"),
		makeOffer("2", "90.00", 0, "PT2H", "IB"),
		makeOffer("3", "95.00", 0, "PT2H", "IB", "BA"),
	}

	result := CollectAirlineCodes(offers)

	assert.Equal(t, []string{"BA", "IB", "LH", "UA"}, result)
}

// TestCollectAirlineCodes_EmptyList tests that no offers yield an empty,
// non-nil facet.
func TestCollectAirlineCodes_EmptyList(t *testing.T) {
	result := CollectAirlineCodes(nil)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

// TestCollectAirlineCodes_OfferWithoutSegments tests the degenerate offer
// contributing nothing.
func TestCollectAirlineCodes_OfferWithoutSegments(t *testing.T) {
	offers := []domain.Offer{
		{ID: "empty"},
		makeOffer("real", "100.00", 0, "PT2H", "IB"),
	}

	result := CollectAirlineCodes(offers)

	assert.Equal(t, []string{"IB"}, result)
}
