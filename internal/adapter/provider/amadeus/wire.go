package amadeus

// OffersResponse is the upstream flight-offers payload: the offer list
// under "data" plus the code-to-name dictionaries. The static fallback
// provider embeds its payload in this same shape, so the type and
// Normalize are exported.
type OffersResponse struct {
	Data         []Offer      `json:"data"`
	Dictionaries Dictionaries `json:"dictionaries"`
}

// Offer is one priced itinerary option as the upstream encodes it.
type Offer struct {
	ID          string      `json:"id"`
	Itineraries []Itinerary `json:"itineraries"`
	Price       Price       `json:"price"`
}

// Itinerary is one directional journey on the wire.
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is one flight leg on the wire.
type Segment struct {
	Departure     Point    `json:"departure"`
	Arrival       Point    `json:"arrival"`
	CarrierCode   string   `json:"carrierCode"`
	Number        string   `json:"number"`
	Aircraft      Aircraft `json:"aircraft"`
	Duration      string   `json:"duration"`
	NumberOfStops int      `json:"numberOfStops"`
}

// Point is a departure or arrival point on the wire.
type Point struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// Aircraft carries the aircraft type code; the display name lives in the
// dictionaries.
type Aircraft struct {
	Code string `json:"code"`
}

// Price is the priced amount on the wire; Total is a decimal string.
type Price struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

// Dictionaries are the upstream lookup tables. Carriers, aircraft and
// currencies map codes straight to names; locations map to a structured
// entry.
type Dictionaries struct {
	Carriers   map[string]string   `json:"carriers"`
	Aircraft   map[string]string   `json:"aircraft"`
	Currencies map[string]string   `json:"currencies"`
	Locations  map[string]Location `json:"locations"`
}

// Location is one locations-dictionary entry.
type Location struct {
	CityCode    string `json:"cityCode"`
	CountryCode string `json:"countryCode"`
}
