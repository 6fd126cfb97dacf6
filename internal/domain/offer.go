// Package domain contains the core business entities and rules for the
// flight offers service. These entities are provider-agnostic and form the
// foundation upon which all other components are built.
package domain

// Offer represents one priced itinerary option returned by a search.
//
// An offer with zero itineraries or zero segments is permitted: every
// derived metric (stops, duration, airlines) degenerates to zero or empty
// for it rather than failing.
type Offer struct {
	// ID uniquely identifies the offer within one search response.
	// It doubles as the deterministic tie-break key when ranking.
	ID string `json:"id"`

	// Itineraries holds one directional journey per entry, in order.
	// One entry means one-way; a second entry is the return journey.
	Itineraries []Itinerary `json:"itineraries"`

	// Price contains the total price for the whole offer.
	Price Price `json:"price"`
}

// Itinerary is one directional journey (outbound or return) composed of
// one or more flight segments in chronological order.
type Itinerary struct {
	// Duration is the total elapsed time encoded as an ISO-8601-style
	// duration string (e.g., "PT2H30M"); either component may be absent.
	Duration string `json:"duration"`

	// Segments lists the connecting flight legs in chronological order.
	Segments []Segment `json:"segments"`
}

// Segment is one non-stop flight leg within an itinerary.
type Segment struct {
	// Departure is the origin point of this leg.
	Departure SegmentPoint `json:"departure"`

	// Arrival is the destination point of this leg.
	Arrival SegmentPoint `json:"arrival"`

	// CarrierCode is the IATA code of the operating airline (e.g., "GA").
	CarrierCode string `json:"carrierCode"`

	// NumberOfStops counts technical stops within this single leg.
	// It is usually 0; a full connection is a separate segment.
	NumberOfStops int `json:"numberOfStops"`
}

// SegmentPoint is a departure or arrival point of a flight leg.
type SegmentPoint struct {
	// IATACode is the airport code (e.g., "MAD").
	IATACode string `json:"iataCode"`

	// At is the scheduled local time as an ISO datetime string.
	At string `json:"at"`
}

// Price is the priced amount of an offer.
type Price struct {
	// Total is the decimal amount encoded as a string, exactly as the
	// upstream API delivers it. Parse with ParseDecimalOrZero.
	Total string `json:"total"`

	// Currency is the ISO 4217 currency code (e.g., "EUR").
	Currency string `json:"currency"`
}

// TotalStops sums NumberOfStops across every segment of every itinerary.
// An offer without itineraries or segments yields 0.
func (o Offer) TotalStops() int {
	total := 0
	for _, it := range o.Itineraries {
		for _, seg := range it.Segments {
			total += seg.NumberOfStops
		}
	}
	return total
}

// AirlineCodes returns the distinct carrier codes across all segments of
// all itineraries, in first-seen order. Membership is what matters to
// callers; the order is kept stable for display. An offer without segments
// yields an empty slice.
func (o Offer) AirlineCodes() []string {
	codes := []string{}
	seen := make(map[string]struct{})
	for _, it := range o.Itineraries {
		for _, seg := range it.Segments {
			if _, ok := seen[seg.CarrierCode]; ok {
				continue
			}
			seen[seg.CarrierCode] = struct{}{}
			codes = append(codes, seg.CarrierCode)
		}
	}
	return codes
}

// TotalDurationMinutes sums the parsed duration of every itinerary.
// Malformed duration strings contribute 0.
func (o Offer) TotalDurationMinutes() int {
	total := 0
	for _, it := range o.Itineraries {
		total += ParseDurationMinutes(it.Duration)
	}
	return total
}

// PriceTotal returns the parsed numeric total price.
// Malformed price strings yield 0.
func (o Offer) PriceTotal() float64 {
	return ParseDecimalOrZero(o.Price.Total)
}
