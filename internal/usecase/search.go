package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/farescope/flight-offers-service/internal/cache"
	"github.com/farescope/flight-offers-service/internal/domain"
	"github.com/farescope/flight-offers-service/internal/infrastructure/logger"
	"github.com/farescope/flight-offers-service/internal/metrics"
)

// Default timeout values.
const (
	DefaultGlobalTimeout   = 10 * time.Second
	DefaultProviderTimeout = 5 * time.Second
)

// SearchUseCase defines the interface for flight-offers search operations.
type SearchUseCase interface {
	// Search validates the criteria, obtains a snapshot (from cache or a
	// provider), binds it to a fresh filter session and returns the
	// session together with its initial view.
	Search(ctx context.Context, criteria domain.SearchCriteria) (*SearchResult, error)
}

// SessionCreator binds a snapshot to a new filter session. Implemented by
// the session store.
type SessionCreator interface {
	Create(snapshot *domain.SearchSnapshot) (*domain.Session, domain.SessionView, error)
}

// SearchResult is the outcome of one search: the created session plus its
// initial view.
type SearchResult struct {
	// SessionID identifies the filter session bound to the snapshot.
	SessionID string

	// ExpiresAt is when the session expires.
	ExpiresAt time.Time

	// Provider names the provider that served the snapshot; empty when
	// the snapshot came from the cache.
	Provider string

	// Cached indicates the snapshot was served from the cache.
	Cached bool

	// View is the initial session view under the default filter state.
	View domain.SessionView
}

// Config contains configuration options for the use case.
type Config struct {
	GlobalTimeout   time.Duration
	ProviderTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout:   DefaultGlobalTimeout,
		ProviderTimeout: DefaultProviderTimeout,
	}
}

// searchUseCase implements SearchUseCase with an ordered provider
// failover chain: the primary provider is tried first and each fallback
// is consulted only after its predecessor failed.
type searchUseCase struct {
	registry        *domain.ProviderRegistry
	cache           cache.Cache
	sessions        SessionCreator
	log             *logger.Logger
	globalTimeout   time.Duration
	providerTimeout time.Duration
}

// NewSearchUseCase creates a SearchUseCase over the given provider
// registry, snapshot cache and session store. A nil cache disables
// caching; a nil config uses the default timeouts.
func NewSearchUseCase(registry *domain.ProviderRegistry, snapshots cache.Cache, sessions SessionCreator, log *logger.Logger, config *Config) SearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.ProviderTimeout > 0 {
			cfg.ProviderTimeout = config.ProviderTimeout
		}
	}
	if snapshots == nil {
		snapshots = cache.NewNoopCache()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &searchUseCase{
		registry:        registry,
		cache:           snapshots,
		sessions:        sessions,
		log:             log,
		globalTimeout:   cfg.GlobalTimeout,
		providerTimeout: cfg.ProviderTimeout,
	}
}

// Search implements SearchUseCase.
func (uc *searchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria) (*SearchResult, error) {
	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.globalTimeout)
	defer cancel()

	if snapshot := uc.lookupCache(ctx, criteria); snapshot != nil {
		return uc.bindSession(snapshot, "", true)
	}

	snapshot, providerName, err := uc.fetchSnapshot(ctx, criteria)
	if err != nil {
		return nil, err
	}

	uc.storeCache(ctx, criteria, snapshot)

	return uc.bindSession(snapshot, providerName, false)
}

// fetchSnapshot walks the provider chain in failover order and returns the
// first successful snapshot along with the provider's name.
func (uc *searchUseCase) fetchSnapshot(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchSnapshot, string, error) {
	providers := uc.registry.GetAll()
	if len(providers) == 0 {
		return nil, "", domain.ErrAllProvidersFailed
	}

	var lastErr error
	for i, provider := range providers {
		if err := ctx.Err(); err != nil {
			lastErr = domain.NewProviderTimeoutError(provider.Name())
			break
		}

		snapshot, err := uc.queryProvider(ctx, provider, criteria)
		if err != nil {
			lastErr = err
			metrics.RecordProviderRequest(provider.Name(), "failure")
			uc.log.Warn().
				Err(err).
				Str("provider", provider.Name()).
				Msg("provider search failed")
			if i+1 < len(providers) {
				uc.log.Info().
					Str("failed_provider", provider.Name()).
					Str("fallback_provider", providers[i+1].Name()).
					Msg("degrading to fallback provider")
			}
			continue
		}

		metrics.RecordProviderRequest(provider.Name(), "success")
		uc.log.Debug().
			Str("provider", provider.Name()).
			Int("offers", len(snapshot.Offers)).
			Msg("provider search succeeded")
		return snapshot, provider.Name(), nil
	}

	return nil, "", fmt.Errorf("%w: %w", domain.ErrAllProvidersFailed, lastErr)
}

// queryProvider calls one provider under the per-provider timeout,
// converting panics and bare deadline errors into provider errors so the
// chain can keep going.
func (uc *searchUseCase) queryProvider(ctx context.Context, provider domain.OffersProvider, criteria domain.SearchCriteria) (snapshot *domain.SearchSnapshot, err error) {
	ctx, cancel := context.WithTimeout(ctx, uc.providerTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			snapshot = nil
			err = domain.NewProviderError(provider.Name(), fmt.Errorf("provider panic: %v", r))
		}
	}()

	snapshot, err = provider.Search(ctx, criteria)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && !domain.IsProviderTimeout(err) {
			return nil, domain.NewProviderTimeoutError(provider.Name())
		}
		return nil, err
	}
	if snapshot == nil {
		return nil, domain.NewProviderError(provider.Name(), errors.New("provider returned no snapshot"))
	}
	return snapshot, nil
}

// lookupCache consults the snapshot cache, degrading any cache failure to
// a miss.
func (uc *searchUseCase) lookupCache(ctx context.Context, criteria domain.SearchCriteria) *domain.SearchSnapshot {
	snapshot, ok, err := uc.cache.Get(ctx, criteria)
	if err != nil {
		uc.log.Warn().Err(err).Msg("snapshot cache lookup failed")
		return nil
	}
	if !ok {
		return nil
	}
	uc.log.Debug().
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Msg("snapshot served from cache")
	return snapshot
}

// storeCache writes the snapshot to the cache, logging failures instead of
// surfacing them.
func (uc *searchUseCase) storeCache(ctx context.Context, criteria domain.SearchCriteria, snapshot *domain.SearchSnapshot) {
	if err := uc.cache.Set(ctx, criteria, snapshot); err != nil {
		uc.log.Warn().Err(err).Msg("snapshot cache store failed")
	}
}

// bindSession creates the filter session for the snapshot and assembles
// the result.
func (uc *searchUseCase) bindSession(snapshot *domain.SearchSnapshot, providerName string, cached bool) (*SearchResult, error) {
	session, view, err := uc.sessions.Create(snapshot)
	if err != nil {
		return nil, fmt.Errorf("create filter session: %w", err)
	}

	return &SearchResult{
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
		Provider:  providerName,
		Cached:    cached,
		View:      view,
	}, nil
}

// Ensure searchUseCase implements SearchUseCase at compile time.
var _ SearchUseCase = (*searchUseCase)(nil)
