package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"terminal-itinerary-service/internal/domain"
	"terminal-itinerary-service/internal/platform/obs"
	"terminal-itinerary-service/internal/ports"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const sessionLockStripes = 64

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ItinerarySessions stores one Itinerary per traveler session.
//
// Every mutation runs load -> apply -> save while holding a lock for the
// session id, so concurrent requests against one session never lose updates.
type ItinerarySessions struct {
	catalog      *domain.Catalog
	store        ports.ItineraryStore
	clock        ports.Clock
	boardingLead time.Duration
	newID        func() string
	locks        [sessionLockStripes]sync.Mutex
	logger       zerolog.Logger
}

func NewItinerarySessions(
	catalog *domain.Catalog,
	store ports.ItineraryStore,
	clock ports.Clock,
	boardingLead time.Duration,
) (*ItinerarySessions, error) {
	if catalog.Len() == 0 {
		return nil, fmt.Errorf("new itinerary sessions: %w", domain.ErrCatalogUnavailable)
	}
	if store == nil {
		return nil, errors.New("new itinerary sessions: store must be non-nil")
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if boardingLead <= 0 {
		boardingLead = DefaultBoardingLead
	}

	return &ItinerarySessions{
		catalog:      catalog,
		store:        store,
		clock:        clock,
		boardingLead: boardingLead,
		newID:        func() string { return uuid.NewString() },
		logger:       obs.Component("sessions"),
	}, nil
}

// Create starts a new session. A nil startAt means now.
// The boarding deadline is fixed at creation and does not follow start-time shifts.
func (s *ItinerarySessions) Create(ctx context.Context, startAt *time.Time) (_ string, _ ItineraryView, err error) {
	defer obs.Time(ctx, "sessions.Create")(&err)

	now := s.clock.Now()
	start := now
	if startAt != nil {
		start = *startAt
	}

	it, err := NewItinerary(s.catalog, start, now.Add(s.boardingLead))
	if err != nil {
		return "", ItineraryView{}, fmt.Errorf("create session: %w", err)
	}

	id := s.newID()
	if err := s.store.Save(ctx, id, it.Snapshot()); err != nil {
		return "", ItineraryView{}, fmt.Errorf("create session: save %q: %w", id, err)
	}

	s.logger.Info().Str("session", id).Strs("selection", it.Selection()).Msg("session created")
	return id, it.View(), nil
}

// Get returns the current view of a session.
func (s *ItinerarySessions) Get(ctx context.Context, id string) (ItineraryView, error) {
	it, err := s.load(ctx, id)
	if err != nil {
		return ItineraryView{}, err
	}
	return it.View(), nil
}

// Update applies fn to the session's itinerary and persists the result.
func (s *ItinerarySessions) Update(ctx context.Context, id string, fn func(*Itinerary)) (_ ItineraryView, err error) {
	defer obs.Time(ctx, "sessions.Update")(&err)

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	it, err := s.load(ctx, id)
	if err != nil {
		return ItineraryView{}, err
	}

	before := it.Revision()
	fn(it)

	if err := s.store.Save(ctx, id, it.Snapshot()); err != nil {
		return ItineraryView{}, fmt.Errorf("update session: save %q: %w", id, err)
	}

	view := it.View()
	if view.Revision != before {
		s.logger.Debug().Str("session", id).Strs("selection", view.Selection).Msg("selection re-optimized")
	}
	return view, nil
}

// Selection returns the ordered ids of a session, for suggestion filtering.
func (s *ItinerarySessions) Selection(ctx context.Context, id string) ([]string, error) {
	it, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return it.Selection(), nil
}

func (s *ItinerarySessions) Delete(ctx context.Context, id string) error {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session %q: %w", id, err)
	}
	return nil
}

func (s *ItinerarySessions) load(ctx context.Context, id string) (*Itinerary, error) {
	state, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", id, err)
	}

	it, err := RestoreItinerary(s.catalog, state)
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", id, err)
	}
	return it, nil
}

func (s *ItinerarySessions) lockFor(id string) *sync.Mutex {
	return &s.locks[xxhash.Sum64String(id)%sessionLockStripes]
}
