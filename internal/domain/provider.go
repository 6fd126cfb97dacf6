package domain

import (
	"context"
	"sync"
)

// OffersProvider is the port through which search criteria become offer
// snapshots. Implementations live under internal/adapter/provider and wrap
// their failures in *ProviderError.
type OffersProvider interface {
	// Search runs one flight-offers search and returns the resulting
	// snapshot. Implementations must honor context cancellation.
	Search(ctx context.Context, criteria SearchCriteria) (*SearchSnapshot, error)

	// Name returns the provider's unique identifier, used in logs,
	// metrics and error messages.
	Name() string
}

// ProviderRegistry holds providers in failover order: the search usecase
// tries each registered provider in turn until one succeeds, so the
// primary upstream is registered first and the static fallback last.
type ProviderRegistry struct {
	mu        sync.RWMutex
	order     []string
	providers map[string]OffersProvider
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]OffersProvider),
	}
}

// Register adds a provider at the end of the failover order.
// Registering a provider with a name that already exists replaces the
// previous one in place, keeping its position. Nil providers are ignored.
func (r *ProviderRegistry) Register(p OffersProvider) {
	if p == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	if _, exists := r.providers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.providers[name] = p
}

// Get returns the provider with the given name, or nil if not registered.
func (r *ProviderRegistry) Get(name string) OffersProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers[name]
}

// GetAll returns the providers in failover order.
func (r *ProviderRegistry) GetAll() []OffersProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]OffersProvider, 0, len(r.order))
	for _, name := range r.order {
		all = append(all, r.providers[name])
	}
	return all
}

// Names returns the registered provider names in failover order.
func (r *ProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered providers.
func (r *ProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
