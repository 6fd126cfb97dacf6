package domain

// SearchSnapshot is one immutable search result: the offers plus the
// response dictionaries, delivered atomically by a provider. A snapshot
// replaces its predecessor wholesale; it is never patched in place, and
// every derived view is recomputed fresh from (snapshot, FilterState).
type SearchSnapshot struct {
	// Offers is the offer list in the order the provider returned it.
	Offers []Offer `json:"offers"`

	// Dictionaries resolves codes to display names for presentation.
	Dictionaries Dictionaries `json:"dictionaries"`
}

// Dictionaries maps carrier, aircraft, currency and location codes to
// display names. They are consulted only for presentation, never for
// filtering, and every lookup falls back to the raw code when an entry
// is missing.
type Dictionaries struct {
	// Carriers maps IATA airline codes to airline names.
	Carriers map[string]string `json:"carriers,omitempty"`

	// Aircraft maps aircraft type codes to model names.
	Aircraft map[string]string `json:"aircraft,omitempty"`

	// Currencies maps ISO 4217 codes to currency names.
	Currencies map[string]string `json:"currencies,omitempty"`

	// Locations maps IATA location codes to place names.
	Locations map[string]string `json:"locations,omitempty"`
}

// CarrierName resolves an airline code to its display name,
// falling back to the code itself.
func (d Dictionaries) CarrierName(code string) string {
	if name, ok := d.Carriers[code]; ok && name != "" {
		return name
	}
	return code
}

// LocationName resolves a location code to its display name,
// falling back to the code itself.
func (d Dictionaries) LocationName(code string) string {
	if name, ok := d.Locations[code]; ok && name != "" {
		return name
	}
	return code
}
