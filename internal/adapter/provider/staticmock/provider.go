// Package staticmock provides the embedded fallback provider: a fixed
// offers catalogue in the upstream wire shape, reshaped to the requested
// route and dates at search time. It never fails, which keeps the search
// path alive when the live provider is down.
package staticmock

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/farescope/flight-offers-service/internal/adapter/provider/amadeus"
	"github.com/farescope/flight-offers-service/internal/domain"
)

// ProviderName identifies this provider in errors, logs and metrics.
const ProviderName = "staticmock"

//go:embed offers.json
var offersPayload []byte

// Provider implements domain.OffersProvider from the embedded catalogue.
type Provider struct {
	response amadeus.OffersResponse
}

var _ domain.OffersProvider = (*Provider)(nil)

// NewProvider decodes the embedded catalogue. An error means the binary
// shipped with a broken payload, so callers treat it as fatal.
func NewProvider() (*Provider, error) {
	var response amadeus.OffersResponse
	if err := json.Unmarshal(offersPayload, &response); err != nil {
		return nil, fmt.Errorf("decode embedded offers payload: %w", err)
	}
	return &Provider{response: response}, nil
}

// Name returns the provider identifier used by the registry.
func (p *Provider) Name() string {
	return ProviderName
}

// Search returns the embedded offers reshaped to the criteria: offers on
// the requested route when the catalogue has any, otherwise the whole
// catalogue with the route stamped on, and in both cases with departure
// times moved to the requested dates. It fails only when the context is
// already done.
func (p *Provider) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	matched, routeKnown := p.matchRoute(criteria)

	offers := make([]amadeus.Offer, 0, len(matched))
	for _, offer := range matched {
		offers = append(offers, reshapeOffer(offer, criteria, routeKnown))
	}

	return amadeus.Normalize(amadeus.OffersResponse{
		Data:         offers,
		Dictionaries: p.response.Dictionaries,
	}), nil
}

// matchRoute returns the catalogue offers whose outbound journey covers
// the requested route. When none match, the whole catalogue is returned
// and the caller stamps the route on.
func (p *Provider) matchRoute(criteria domain.SearchCriteria) ([]amadeus.Offer, bool) {
	matched := make([]amadeus.Offer, 0, len(p.response.Data))
	for _, offer := range p.response.Data {
		origin, destination, ok := outboundRoute(offer)
		if ok && strings.EqualFold(origin, criteria.Origin) && strings.EqualFold(destination, criteria.Destination) {
			matched = append(matched, offer)
		}
	}
	if len(matched) > 0 {
		return matched, true
	}
	return p.response.Data, false
}

func outboundRoute(offer amadeus.Offer) (origin, destination string, ok bool) {
	if len(offer.Itineraries) == 0 {
		return "", "", false
	}
	segments := offer.Itineraries[0].Segments
	if len(segments) == 0 {
		return "", "", false
	}
	return segments[0].Departure.IATACode, segments[len(segments)-1].Arrival.IATACode, true
}

// reshapeOffer clones a catalogue offer and rewrites it for the request:
// one-way searches keep only the outbound itinerary, timestamps move to
// the requested dates, and unknown routes get the requested endpoints
// stamped on.
func reshapeOffer(offer amadeus.Offer, criteria domain.SearchCriteria, routeKnown bool) amadeus.Offer {
	reshaped := cloneOffer(offer)

	if !criteria.RoundTrip() && len(reshaped.Itineraries) > 1 {
		reshaped.Itineraries = reshaped.Itineraries[:1]
	}

	for i := range reshaped.Itineraries {
		date := criteria.DepartureDate
		if i > 0 {
			date = criteria.ReturnDate
		}
		segments := reshaped.Itineraries[i].Segments
		for j := range segments {
			segments[j].Departure.At = stampDate(segments[j].Departure.At, date)
			segments[j].Arrival.At = stampDate(segments[j].Arrival.At, date)
		}
	}

	if !routeKnown {
		stampRoute(&reshaped, criteria)
	}
	return reshaped
}

// cloneOffer deep-copies the itinerary slices so reshaping one search
// never mutates the embedded catalogue.
func cloneOffer(offer amadeus.Offer) amadeus.Offer {
	cloned := offer
	cloned.Itineraries = make([]amadeus.Itinerary, len(offer.Itineraries))
	for i, itinerary := range offer.Itineraries {
		clonedItinerary := itinerary
		clonedItinerary.Segments = append([]amadeus.Segment(nil), itinerary.Segments...)
		cloned.Itineraries[i] = clonedItinerary
	}
	return cloned
}

// stampDate replaces the date part of an ISO timestamp, keeping the time
// of day from the catalogue.
func stampDate(at, date string) string {
	idx := strings.Index(at, "T")
	if idx < 0 || date == "" {
		return at
	}
	return date + at[idx:]
}

// stampRoute rewrites the endpoints so catalogue offers answer a route
// they were not built for: outbound origin to destination, return
// itinerary reversed.
func stampRoute(offer *amadeus.Offer, criteria domain.SearchCriteria) {
	for i := range offer.Itineraries {
		segments := offer.Itineraries[i].Segments
		if len(segments) == 0 {
			continue
		}
		origin, destination := criteria.Origin, criteria.Destination
		if i > 0 {
			origin, destination = destination, origin
		}
		segments[0].Departure.IATACode = origin
		segments[len(segments)-1].Arrival.IATACode = destination
	}
}
