package amadeus

import (
	"github.com/farescope/flight-offers-service/internal/domain"
)

// Normalize converts an upstream response into the domain snapshot. It is
// total: every wire offer maps to a domain offer, and degenerate offers
// (no itineraries, no segments) pass through untouched rather than being
// dropped.
func Normalize(resp OffersResponse) *domain.SearchSnapshot {
	offers := make([]domain.Offer, 0, len(resp.Data))
	for _, offer := range resp.Data {
		offers = append(offers, normalizeOffer(offer))
	}

	return &domain.SearchSnapshot{
		Offers:       offers,
		Dictionaries: normalizeDictionaries(resp.Dictionaries),
	}
}

func normalizeOffer(offer Offer) domain.Offer {
	itineraries := make([]domain.Itinerary, 0, len(offer.Itineraries))
	for _, itinerary := range offer.Itineraries {
		segments := make([]domain.Segment, 0, len(itinerary.Segments))
		for _, segment := range itinerary.Segments {
			segments = append(segments, domain.Segment{
				Departure: domain.SegmentPoint{
					IATACode: segment.Departure.IATACode,
					At:       segment.Departure.At,
				},
				Arrival: domain.SegmentPoint{
					IATACode: segment.Arrival.IATACode,
					At:       segment.Arrival.At,
				},
				CarrierCode:   segment.CarrierCode,
				NumberOfStops: segment.NumberOfStops,
			})
		}
		itineraries = append(itineraries, domain.Itinerary{
			Duration: itinerary.Duration,
			Segments: segments,
		})
	}

	return domain.Offer{
		ID:          offer.ID,
		Itineraries: itineraries,
		Price: domain.Price{
			Total:    offer.Price.Total,
			Currency: offer.Price.Currency,
		},
	}
}

func normalizeDictionaries(dict Dictionaries) domain.Dictionaries {
	return domain.Dictionaries{
		Carriers:   copyLookup(dict.Carriers),
		Aircraft:   copyLookup(dict.Aircraft),
		Currencies: copyLookup(dict.Currencies),
		Locations:  locationNames(dict.Locations),
	}
}

// copyLookup detaches a lookup table from the wire payload. Empty tables
// normalize to nil so lookups fall back to the raw code.
func copyLookup(table map[string]string) map[string]string {
	if len(table) == 0 {
		return nil
	}
	copied := make(map[string]string, len(table))
	for code, name := range table {
		copied[code] = name
	}
	return copied
}

// locationNames flattens structured location entries into display names.
// Entries with neither a city nor a country are dropped, which makes the
// lookup fall back to the raw code.
func locationNames(locations map[string]Location) map[string]string {
	if len(locations) == 0 {
		return nil
	}

	names := make(map[string]string, len(locations))
	for code, entry := range locations {
		switch {
		case entry.CityCode != "" && entry.CountryCode != "":
			names[code] = entry.CityCode + ", " + entry.CountryCode
		case entry.CityCode != "":
			names[code] = entry.CityCode
		case entry.CountryCode != "":
			names[code] = entry.CountryCode
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}
