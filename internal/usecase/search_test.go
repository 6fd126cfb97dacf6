package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/farescope/flight-offers-service/internal/domain"
)

// searchTestCriteria returns valid criteria for orchestration tests.
func searchTestCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "MAD",
		Destination:   "JFK",
		DepartureDate: "2026-09-15",
		Adults:        1,
	}
}

// searchTestSnapshot returns a two-offer snapshot.
func searchTestSnapshot() *domain.SearchSnapshot {
	return &domain.SearchSnapshot{
		Offers: []domain.Offer{
			makeOffer("1", "320.00", 0, "PT8H", "IB"),
			makeOffer("2", "290.00", 1, "PT11H", "BA"),
		},
	}
}

// fakeSessionCreator is a SessionCreator that mimics the real store's
// default-state binding and records every snapshot it sees.
type fakeSessionCreator struct {
	created []*domain.SearchSnapshot
	err     error
}

func (f *fakeSessionCreator) Create(snapshot *domain.SearchSnapshot) (*domain.Session, domain.SessionView, error) {
	if f.err != nil {
		return nil, domain.SessionView{}, f.err
	}
	f.created = append(f.created, snapshot)

	state := domain.NewFilterState(DerivePriceRange(snapshot.Offers))
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	session := &domain.Session{
		ID:        "session-1",
		Snapshot:  snapshot,
		State:     state,
		CreatedAt: now,
		ExpiresAt: now.Add(30 * time.Minute),
	}
	return session, ComputeView(snapshot, state), nil
}

// fakeSnapshotCache is an in-memory Cache with scriptable failures.
type fakeSnapshotCache struct {
	snapshot *domain.SearchSnapshot
	getErr   error
	setErr   error
	getCalls int
	setCalls int
}

func (f *fakeSnapshotCache) Get(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchSnapshot, bool, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	if f.snapshot == nil {
		return nil, false, nil
	}
	return f.snapshot, true, nil
}

func (f *fakeSnapshotCache) Set(ctx context.Context, criteria domain.SearchCriteria, snapshot *domain.SearchSnapshot) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.snapshot = snapshot
	return nil
}

func (f *fakeSnapshotCache) Close() error { return nil }

// newTestRegistry registers the given providers in order.
func newTestRegistry(providers ...domain.OffersProvider) *domain.ProviderRegistry {
	registry := domain.NewProviderRegistry()
	for _, p := range providers {
		registry.Register(p)
	}
	return registry
}

// fastConfig keeps orchestration tests snappy.
func fastConfig() *Config {
	return &Config{
		GlobalTimeout:   2 * time.Second,
		ProviderTimeout: 1 * time.Second,
	}
}

// TestSearchUseCase_InvalidCriteria tests that validation rejects the
// request before any provider is consulted.
func TestSearchUseCase_InvalidCriteria(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockOffersProvider(ctrl)
	provider.EXPECT().Name().Return("amadeus").AnyTimes()

	sessions := &fakeSessionCreator{}
	uc := NewSearchUseCase(newTestRegistry(provider), &fakeSnapshotCache{}, sessions, nil, fastConfig())

	criteria := searchTestCriteria()
	criteria.Origin = ""

	result, err := uc.Search(context.Background(), criteria)

	require.Error(t, err)
	assert.True(t, domain.IsInvalidRequest(err))
	assert.Nil(t, result)
	assert.Empty(t, sessions.created)
}

// TestSearchUseCase_PrimaryProviderSucceeds tests the happy path through
// the primary provider.
func TestSearchUseCase_PrimaryProviderSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshot := searchTestSnapshot()

	primary := domain.NewMockOffersProvider(ctrl)
	primary.EXPECT().Name().Return("amadeus").AnyTimes()
	primary.EXPECT().Search(gomock.Any(), gomock.Any()).Return(snapshot, nil)

	sessions := &fakeSessionCreator{}
	snapshots := &fakeSnapshotCache{}
	uc := NewSearchUseCase(newTestRegistry(primary), snapshots, sessions, nil, fastConfig())

	result, err := uc.Search(context.Background(), searchTestCriteria())

	require.NoError(t, err)
	assert.Equal(t, "session-1", result.SessionID)
	assert.Equal(t, "amadeus", result.Provider)
	assert.False(t, result.Cached)
	assert.Len(t, result.View.Offers, 2)
	assert.Equal(t, 1, snapshots.setCalls)
	require.Len(t, sessions.created, 1)
	assert.Same(t, snapshot, sessions.created[0])
}

// TestSearchUseCase_FallsBackToSecondary tests degradation to the next
// provider in the chain after a primary failure.
func TestSearchUseCase_FallsBackToSecondary(t *testing.T) {
	ctrl := gomock.NewController(t)

	primary := domain.NewMockOffersProvider(ctrl)
	primary.EXPECT().Name().Return("amadeus").AnyTimes()
	primary.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewRetryableProviderError("amadeus", errors.New("upstream 503")))

	fallback := domain.NewMockOffersProvider(ctrl)
	fallback.EXPECT().Name().Return("staticmock").AnyTimes()
	fallback.EXPECT().Search(gomock.Any(), gomock.Any()).Return(searchTestSnapshot(), nil)

	uc := NewSearchUseCase(newTestRegistry(primary, fallback), &fakeSnapshotCache{}, &fakeSessionCreator{}, nil, fastConfig())

	result, err := uc.Search(context.Background(), searchTestCriteria())

	require.NoError(t, err)
	assert.Equal(t, "staticmock", result.Provider)
	assert.False(t, result.Cached)
}

// TestSearchUseCase_AllProvidersFail tests the terminal failure modes.
func TestSearchUseCase_AllProvidersFail(t *testing.T) {
	t.Run("generic failures map to all-providers-failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		primary := domain.NewMockOffersProvider(ctrl)
		primary.EXPECT().Name().Return("amadeus").AnyTimes()
		primary.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewProviderError("amadeus", errors.New("bad gateway")))

		fallback := domain.NewMockOffersProvider(ctrl)
		fallback.EXPECT().Name().Return("staticmock").AnyTimes()
		fallback.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewProviderError("staticmock", errors.New("corrupt payload")))

		uc := NewSearchUseCase(newTestRegistry(primary, fallback), &fakeSnapshotCache{}, &fakeSessionCreator{}, nil, fastConfig())

		result, err := uc.Search(context.Background(), searchTestCriteria())

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, domain.IsAllProvidersFailed(err))
		assert.False(t, domain.IsProviderTimeout(err))
	})

	t.Run("trailing timeout is visible through the wrap", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		primary := domain.NewMockOffersProvider(ctrl)
		primary.EXPECT().Name().Return("amadeus").AnyTimes()
		primary.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewProviderError("amadeus", errors.New("bad gateway")))

		fallback := domain.NewMockOffersProvider(ctrl)
		fallback.EXPECT().Name().Return("staticmock").AnyTimes()
		fallback.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewProviderTimeoutError("staticmock"))

		uc := NewSearchUseCase(newTestRegistry(primary, fallback), &fakeSnapshotCache{}, &fakeSessionCreator{}, nil, fastConfig())

		_, err := uc.Search(context.Background(), searchTestCriteria())

		require.Error(t, err)
		assert.True(t, domain.IsAllProvidersFailed(err))
		assert.True(t, domain.IsProviderTimeout(err))
	})
}

// TestSearchUseCase_EmptyRegistry tests searching with no providers at
// all.
func TestSearchUseCase_EmptyRegistry(t *testing.T) {
	uc := NewSearchUseCase(newTestRegistry(), &fakeSnapshotCache{}, &fakeSessionCreator{}, nil, fastConfig())

	result, err := uc.Search(context.Background(), searchTestCriteria())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsAllProvidersFailed(err))
}

// TestSearchUseCase_CacheHit tests that a cached snapshot skips the
// providers entirely.
func TestSearchUseCase_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)

	// No Search expectation: a provider call would fail the test.
	provider := domain.NewMockOffersProvider(ctrl)
	provider.EXPECT().Name().Return("amadeus").AnyTimes()

	sessions := &fakeSessionCreator{}
	snapshots := &fakeSnapshotCache{snapshot: searchTestSnapshot()}
	uc := NewSearchUseCase(newTestRegistry(provider), snapshots, sessions, nil, fastConfig())

	result, err := uc.Search(context.Background(), searchTestCriteria())

	require.NoError(t, err)
	assert.True(t, result.Cached)
	assert.Empty(t, result.Provider)
	assert.Equal(t, 1, snapshots.getCalls)
	assert.Zero(t, snapshots.setCalls)
	assert.Len(t, sessions.created, 1)
}

// TestSearchUseCase_CacheFailuresDegrade tests that cache errors on both
// paths never fail the search.
func TestSearchUseCase_CacheFailuresDegrade(t *testing.T) {
	tests := []struct {
		name  string
		cache *fakeSnapshotCache
	}{
		{name: "lookup error falls through to providers", cache: &fakeSnapshotCache{getErr: errors.New("redis down")}},
		{name: "store error is swallowed", cache: &fakeSnapshotCache{setErr: errors.New("redis down")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			provider := domain.NewMockOffersProvider(ctrl)
			provider.EXPECT().Name().Return("amadeus").AnyTimes()
			provider.EXPECT().Search(gomock.Any(), gomock.Any()).Return(searchTestSnapshot(), nil)

			uc := NewSearchUseCase(newTestRegistry(provider), tt.cache, &fakeSessionCreator{}, nil, fastConfig())

			result, err := uc.Search(context.Background(), searchTestCriteria())

			require.NoError(t, err)
			assert.False(t, result.Cached)
			assert.Equal(t, "amadeus", result.Provider)
		})
	}
}

// TestSearchUseCase_ProviderPanicFallsBack tests that a panicking
// provider is contained and the chain continues.
func TestSearchUseCase_ProviderPanicFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)

	primary := domain.NewMockOffersProvider(ctrl)
	primary.EXPECT().Name().Return("amadeus").AnyTimes()
	primary.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchSnapshot, error) {
			panic("normalizer exploded")
		})

	fallback := domain.NewMockOffersProvider(ctrl)
	fallback.EXPECT().Name().Return("staticmock").AnyTimes()
	fallback.EXPECT().Search(gomock.Any(), gomock.Any()).Return(searchTestSnapshot(), nil)

	uc := NewSearchUseCase(newTestRegistry(primary, fallback), &fakeSnapshotCache{}, &fakeSessionCreator{}, nil, fastConfig())

	result, err := uc.Search(context.Background(), searchTestCriteria())

	require.NoError(t, err)
	assert.Equal(t, "staticmock", result.Provider)
}

// TestSearchUseCase_AppliesDefaults tests that missing optional fields
// are defaulted before the provider sees the criteria.
func TestSearchUseCase_AppliesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)

	var seen domain.SearchCriteria
	provider := domain.NewMockOffersProvider(ctrl)
	provider.EXPECT().Name().Return("amadeus").AnyTimes()
	provider.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchSnapshot, error) {
			seen = criteria
			return searchTestSnapshot(), nil
		})

	uc := NewSearchUseCase(newTestRegistry(provider), &fakeSnapshotCache{}, &fakeSessionCreator{}, nil, fastConfig())

	criteria := searchTestCriteria()
	criteria.Adults = 0

	_, err := uc.Search(context.Background(), criteria)

	require.NoError(t, err)
	assert.Equal(t, 1, seen.Adults)
}

// TestSearchUseCase_SessionCreateFailure tests that a session-store
// failure surfaces as an error.
func TestSearchUseCase_SessionCreateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := domain.NewMockOffersProvider(ctrl)
	provider.EXPECT().Name().Return("amadeus").AnyTimes()
	provider.EXPECT().Search(gomock.Any(), gomock.Any()).Return(searchTestSnapshot(), nil)

	sessions := &fakeSessionCreator{err: errors.New("store full")}
	uc := NewSearchUseCase(newTestRegistry(provider), &fakeSnapshotCache{}, sessions, nil, fastConfig())

	result, err := uc.Search(context.Background(), searchTestCriteria())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "create filter session")
}
