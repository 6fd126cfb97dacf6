// Package session holds the filter sessions created by searches: each one
// binds an immutable search snapshot to a filter state, keyed by UUID and
// expiring after a TTL.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/farescope/flight-offers-service/internal/domain"
	"github.com/farescope/flight-offers-service/internal/infrastructure/logger"
	"github.com/farescope/flight-offers-service/internal/infrastructure/timeutil"
	"github.com/farescope/flight-offers-service/internal/metrics"
	"github.com/farescope/flight-offers-service/internal/usecase"
)

// Default store settings.
const (
	DefaultTTL             = 30 * time.Minute
	DefaultCleanupInterval = 5 * time.Minute
)

// Config holds the session store options.
type Config struct {
	// TTL is how long a session stays available after creation.
	TTL time.Duration

	// CleanupInterval is how often the janitor sweeps expired sessions.
	CleanupInterval time.Duration
}

// DefaultConfig returns the default store configuration.
func DefaultConfig() Config {
	return Config{
		TTL:             DefaultTTL,
		CleanupInterval: DefaultCleanupInterval,
	}
}

// FilterChanges is a partial update to a session's filter state. Nil
// fields leave the corresponding selection untouched.
type FilterChanges struct {
	// Stops replaces the stop-count criterion.
	Stops *domain.StopsCriterion

	// Airlines replaces the airline selection.
	Airlines *domain.AirlineSelection

	// Price replaces the price range.
	Price *domain.PriceRange
}

// Store is an in-memory session store guarded by a read-write mutex.
// Expired sessions are unavailable immediately and reclaimed by a
// background janitor.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session

	ttl   time.Duration
	clock timeutil.Clock
	log   *logger.Logger

	stop     chan struct{}
	stopOnce sync.Once
}

// NewStore creates a session store and starts its cleanup janitor. A nil
// clock uses the system clock; a nil logger discards output.
func NewStore(cfg Config, clock timeutil.Clock, log *logger.Logger) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultCleanupInterval
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &Store{
		sessions: make(map[string]*domain.Session),
		ttl:      cfg.TTL,
		clock:    clock,
		log:      log,
		stop:     make(chan struct{}),
	}

	go s.janitor(cfg.CleanupInterval)
	return s
}

// Create binds a snapshot to a new session under the default filter state
// (all stop counts, every airline) with price bounds derived from that
// state's cohort. It returns the stored session and its initial view.
func (s *Store) Create(snapshot *domain.SearchSnapshot) (*domain.Session, domain.SessionView, error) {
	if snapshot == nil {
		snapshot = &domain.SearchSnapshot{}
	}

	cohort := usecase.ApplyCohortFilters(snapshot.Offers, domain.StopsAll, domain.AllAirlines())
	state := domain.NewFilterState(usecase.DerivePriceRange(cohort))

	now := s.clock.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Snapshot:  snapshot,
		State:     state,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	metrics.SetActiveSessions(len(s.sessions))
	s.mu.Unlock()

	s.log.Debug().
		Str("session_id", session.ID).
		Int("offers", len(snapshot.Offers)).
		Time("expires_at", session.ExpiresAt).
		Msg("filter session created")

	return s.copyOf(session), usecase.ComputeView(snapshot, state), nil
}

// Get returns a copy of the session. Unknown and expired sessions both
// yield domain.ErrSessionNotFound.
func (s *Store) Get(id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.locked(id)
	if err != nil {
		return nil, err
	}
	return s.copyOf(session), nil
}

// View recomputes and returns the session's current view.
func (s *Store) View(id string) (domain.SessionView, error) {
	session, err := s.Get(id)
	if err != nil {
		return domain.SessionView{}, err
	}
	return usecase.ComputeView(session.Snapshot, session.State), nil
}

// SetStops replaces the stop-count criterion and rebounds the price range
// from the new cohort.
func (s *Store) SetStops(id string, criterion domain.StopsCriterion) (domain.SessionView, error) {
	return s.UpdateFilters(id, FilterChanges{Stops: &criterion})
}

// SetAirlines replaces the airline selection and rebounds the price range
// from the new cohort.
func (s *Store) SetAirlines(id string, selection domain.AirlineSelection) (domain.SessionView, error) {
	return s.UpdateFilters(id, FilterChanges{Airlines: &selection})
}

// SetPriceRange replaces the selected price range only; the cohort is not
// recomputed.
func (s *Store) SetPriceRange(id string, min, max float64) (domain.SessionView, error) {
	return s.UpdateFilters(id, FilterChanges{Price: &domain.PriceRange{Min: min, Max: max}})
}

// UpdateFilters applies a partial filter change atomically and returns the
// recomputed view.
//
// Transition policy:
//   - A stops or airline change rebounds the price range by running the
//     cohort pipeline under the new selection and deriving fresh bounds;
//     the previously chosen slider position is discarded
//   - An explicit price change is applied last and wins over rebounding
//   - A price-only change never triggers cohort recomputation
func (s *Store) UpdateFilters(id string, changes FilterChanges) (domain.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.locked(id)
	if err != nil {
		return domain.SessionView{}, err
	}

	state := session.State
	rebound := false

	if changes.Stops != nil {
		state.Stops = *changes.Stops
		rebound = true
	}
	if changes.Airlines != nil {
		state.Airlines = *changes.Airlines
		rebound = true
	}
	if rebound {
		cohort := usecase.ApplyCohortFilters(session.Snapshot.Offers, state.Stops, state.Airlines)
		state.PriceRange = usecase.DerivePriceRange(cohort)
	}
	if changes.Price != nil {
		state.PriceRange = *changes.Price
	}

	session.State = state
	return usecase.ComputeView(session.Snapshot, state), nil
}

// Delete removes the session. Deleting an unknown session is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	metrics.SetActiveSessions(len(s.sessions))
}

// Len returns the number of stored sessions, including any expired ones
// the janitor has not swept yet.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the cleanup janitor. The store remains usable afterwards;
// only background sweeping stops.
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// locked fetches a live session. Callers must hold at least a read lock.
func (s *Store) locked(id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok || session.Expired(s.clock.Now()) {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// copyOf returns a shallow copy so callers never share the stored struct.
// The snapshot pointer is shared deliberately: snapshots are immutable.
func (s *Store) copyOf(session *domain.Session) *domain.Session {
	copied := *session
	return &copied
}

// janitor sweeps expired sessions until Close is called.
func (s *Store) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.removeExpired()
		}
	}
}

// removeExpired drops every session past its expiry.
func (s *Store) removeExpired() {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			s.log.Debug().Str("session_id", id).Msg("expired filter session removed")
		}
	}
	metrics.SetActiveSessions(len(s.sessions))
}
