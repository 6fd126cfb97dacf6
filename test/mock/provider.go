// Package mock provides configurable test doubles for integration tests:
// offer providers with scripted snapshots, failures and latency.
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/farescope/flight-offers-service/internal/domain"
)

// Provider is a scriptable domain.OffersProvider. The With* builders set
// what Search returns; CallCount observes how often the failover chain
// reached this provider.
type Provider struct {
	mu        sync.Mutex
	name      string
	snapshot  *domain.SearchSnapshot
	err       error
	delay     time.Duration
	callCount int
}

var _ domain.OffersProvider = (*Provider)(nil)

// NewProvider creates a mock provider that answers with an empty snapshot
// until scripted otherwise.
func NewProvider(name string) *Provider {
	return &Provider{name: name}
}

// WithSnapshot scripts the snapshot Search returns.
func (p *Provider) WithSnapshot(snapshot *domain.SearchSnapshot) *Provider {
	p.snapshot = snapshot
	return p
}

// WithOffers scripts a snapshot holding the given offers and no
// dictionaries.
func (p *Provider) WithOffers(offers ...domain.Offer) *Provider {
	p.snapshot = &domain.SearchSnapshot{Offers: offers}
	return p
}

// WithError scripts Search to fail with err.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay makes Search wait for d, or context cancellation, before
// answering. Used to provoke per-provider timeouts.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name implements domain.OffersProvider.
func (p *Provider) Name() string {
	return p.name
}

// Search implements domain.OffersProvider with the scripted behavior.
func (p *Provider) Search(ctx context.Context, _ domain.SearchCriteria) (*domain.SearchSnapshot, error) {
	p.mu.Lock()
	p.callCount++
	snapshot, scriptedErr, delay := p.snapshot, p.err, p.delay
	p.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if scriptedErr != nil {
		return nil, scriptedErr
	}
	if snapshot == nil {
		return &domain.SearchSnapshot{}, nil
	}
	return snapshot, nil
}

// CallCount returns how many times Search was invoked.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// SampleOffers returns count offers with all fields populated with
// realistic values: ascending prices, carriers cycling through a small
// set, and stop counts alternating between nonstop and one stop.
func SampleOffers(count int) []domain.Offer {
	carriers := []string{"IB", "BA", "AF", "LH"}
	base := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)

	offers := make([]domain.Offer, count)
	for i := 0; i < count; i++ {
		departure := base.Add(time.Duration(i*2) * time.Hour)
		arrival := departure.Add(8*time.Hour + 30*time.Minute)

		offers[i] = domain.Offer{
			ID: fmt.Sprintf("offer-%d", i+1),
			Itineraries: []domain.Itinerary{
				{
					Duration: "PT8H30M",
					Segments: []domain.Segment{
						{
							Departure:     domain.SegmentPoint{IATACode: "MAD", At: departure.Format("2006-01-02T15:04:05")},
							Arrival:       domain.SegmentPoint{IATACode: "JFK", At: arrival.Format("2006-01-02T15:04:05")},
							CarrierCode:   carriers[i%len(carriers)],
							NumberOfStops: i % 2,
						},
					},
				},
			},
			Price: domain.Price{
				Total:    fmt.Sprintf("%.2f", 350.00+float64(i)*75),
				Currency: "EUR",
			},
		}
	}

	return offers
}

// SampleSnapshot returns a snapshot with count sample offers and the
// matching display-name dictionaries.
func SampleSnapshot(count int) *domain.SearchSnapshot {
	return &domain.SearchSnapshot{
		Offers: SampleOffers(count),
		Dictionaries: domain.Dictionaries{
			Carriers: map[string]string{
				"IB": "IBERIA",
				"BA": "BRITISH AIRWAYS",
				"AF": "AIR FRANCE",
				"LH": "LUFTHANSA",
			},
			Locations: map[string]string{
				"MAD": "MADRID, ES",
				"JFK": "NEW YORK, US",
			},
		},
	}
}
