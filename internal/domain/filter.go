package domain

import (
	"sort"
	"strings"
)

// StopsCriterion is the closed set of stop-count selections a client can
// make. It is deliberately an enumeration rather than an arbitrary integer.
type StopsCriterion string

// Available stop-count criteria.
const (
	// StopsAll disables stop-count filtering (default).
	StopsAll StopsCriterion = "all"

	// StopsNonstop keeps offers with zero total stops.
	StopsNonstop StopsCriterion = "nonstop"

	// StopsOne keeps offers with exactly one total stop.
	StopsOne StopsCriterion = "1stop"

	// StopsTwoPlus keeps offers with two or more total stops.
	StopsTwoPlus StopsCriterion = "2plus"
)

// IsValid checks if the criterion is one of the known values.
func (c StopsCriterion) IsValid() bool {
	switch c {
	case StopsAll, StopsNonstop, StopsOne, StopsTwoPlus:
		return true
	default:
		return false
	}
}

// Matches reports whether an offer with the given total stop count passes
// this criterion. An unrecognized criterion passes everything, matching
// the ParseStopsCriterion fallback.
func (c StopsCriterion) Matches(totalStops int) bool {
	switch c {
	case StopsNonstop:
		return totalStops == 0
	case StopsOne:
		return totalStops == 1
	case StopsTwoPlus:
		return totalStops >= 2
	default:
		return true
	}
}

// ParseStopsCriterion converts a string to a StopsCriterion.
// Returns StopsAll if the string is empty or invalid.
func ParseStopsCriterion(s string) StopsCriterion {
	c := StopsCriterion(s)
	if c.IsValid() {
		return c
	}
	return StopsAll
}

// PriceRange bounds the total price of an offer, inclusive on both ends,
// in the currency units of the search.
type PriceRange struct {
	// Min is the lower bound (inclusive).
	Min float64 `json:"min"`

	// Max is the upper bound (inclusive).
	Max float64 `json:"max"`
}

// Contains reports whether amount lies within the range, inclusive.
func (r PriceRange) Contains(amount float64) bool {
	return amount >= r.Min && amount <= r.Max
}

// Span returns the width of the range.
func (r PriceRange) Span() float64 {
	return r.Max - r.Min
}

// AirlineSelection is a tagged choice between "every airline" and a
// specific set of carrier codes. The explicit All tag keeps "no codes
// chosen" from ever being read as "exclude everything".
type AirlineSelection struct {
	// All selects every airline when true; Codes is then ignored.
	All bool `json:"all"`

	// Codes is the selected set of uppercase IATA carrier codes,
	// consulted only when All is false.
	Codes []string `json:"codes,omitempty"`
}

// AllAirlines returns a selection that passes every carrier.
func AllAirlines() AirlineSelection {
	return AirlineSelection{All: true}
}

// SelectAirlines returns a selection restricted to the given carrier codes.
// Codes are upper-cased, trimmed and de-duplicated; selecting no codes
// falls back to all airlines.
func SelectAirlines(codes ...string) AirlineSelection {
	normalized := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		normalized = append(normalized, code)
	}

	if len(normalized) == 0 {
		return AllAirlines()
	}
	sort.Strings(normalized)
	return AirlineSelection{Codes: normalized}
}

// IsAll reports whether the selection passes every carrier. A selection
// carrying no codes behaves as all airlines regardless of the tag.
func (s AirlineSelection) IsAll() bool {
	return s.All || len(s.Codes) == 0
}

// CodeSet returns the selected codes as a set for membership tests.
// Returns nil when the selection is all airlines.
func (s AirlineSelection) CodeSet() map[string]struct{} {
	if s.IsAll() {
		return nil
	}
	set := make(map[string]struct{}, len(s.Codes))
	for _, code := range s.Codes {
		set[strings.ToUpper(code)] = struct{}{}
	}
	return set
}

// Matches reports whether an offer carrying the given airline codes passes
// the selection. A multi-carrier offer matches when any one of its
// carriers is selected.
func (s AirlineSelection) Matches(offerCodes []string) bool {
	set := s.CodeSet()
	if set == nil {
		return true
	}
	for _, code := range offerCodes {
		if _, ok := set[strings.ToUpper(code)]; ok {
			return true
		}
	}
	return false
}

// FilterState captures one client's current filter selections. It is held
// by a session, passed by value into the pure pipeline functions, and never
// mutated in place by them.
type FilterState struct {
	// Stops is the selected stop-count criterion.
	Stops StopsCriterion `json:"stops"`

	// PriceRange bounds the total price, inclusive on both ends.
	PriceRange PriceRange `json:"priceRange"`

	// Airlines narrows offers to the selected carriers.
	Airlines AirlineSelection `json:"airlines"`
}

// NewFilterState returns the state bound to a fresh search snapshot:
// all stop counts, every airline, and the given price bounds.
func NewFilterState(bounds PriceRange) FilterState {
	return FilterState{
		Stops:      StopsAll,
		PriceRange: bounds,
		Airlines:   AllAirlines(),
	}
}
