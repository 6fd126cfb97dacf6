package domain

import "time"

// Session binds one immutable search snapshot to one filter state. The
// snapshot is stored once and never mutated; the state is replaced
// wholesale on every transition, so concurrent updates resolve to "most
// recent write wins".
type Session struct {
	// ID is the session's UUID, handed to clients for follow-up calls.
	ID string `json:"id"`

	// Snapshot is the search result the session filters over.
	Snapshot *SearchSnapshot `json:"snapshot"`

	// State is the session's current filter selections.
	State FilterState `json:"state"`

	// CreatedAt is when the session was created.
	CreatedAt time.Time `json:"createdAt"`

	// ExpiresAt is when the session becomes unavailable.
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at the given
// instant.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionView is the client-facing projection of a session, recomputed
// from the snapshot and filter state on every read and mutation rather
// than cached across states.
type SessionView struct {
	// Offers is the fully filtered result set, in snapshot order.
	Offers []Offer `json:"offers"`

	// PriceBounds is the valid price-slider range under the current
	// stops/airline selection, derived from the cohort.
	PriceBounds PriceRange `json:"priceBounds"`

	// AvailableAirlines lists the sorted unique carrier codes across the
	// whole snapshot, independent of the current selection.
	AvailableAirlines []string `json:"availableAirlines"`

	// BestValueID is the id of the recommended offer within the filtered
	// set; empty when the filtered set is empty.
	BestValueID string `json:"bestValueId,omitempty"`

	// State echoes the filter selections the view was computed under.
	State FilterState `json:"state"`

	// Dictionaries carries the snapshot's code-to-name lookups so the
	// presentation layer can render display names without reaching back
	// into the session.
	Dictionaries Dictionaries `json:"dictionaries"`
}
