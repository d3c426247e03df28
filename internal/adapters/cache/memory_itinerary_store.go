package cache

import (
	"context"
	"slices"
	"sync"
	"terminal-itinerary-service/internal/domain"
	"terminal-itinerary-service/internal/ports"
)

// MemoryItineraryStore keeps sessions in process memory.
// Used when no Redis URL is configured and in tests.
type MemoryItineraryStore struct {
	mu     sync.RWMutex
	states map[string]domain.ItineraryState
}

func NewMemoryItineraryStore() *MemoryItineraryStore {
	return &MemoryItineraryStore{states: make(map[string]domain.ItineraryState)}
}

func (s *MemoryItineraryStore) Load(ctx context.Context, id string) (domain.ItineraryState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[id]
	if !ok {
		return domain.ItineraryState{}, ports.ErrItineraryNotFound
	}
	state.Selection = slices.Clone(state.Selection)
	return state, nil
}

func (s *MemoryItineraryStore) Save(ctx context.Context, id string, state domain.ItineraryState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state.Selection = slices.Clone(state.Selection)
	s.states[id] = state
	return nil
}

func (s *MemoryItineraryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.states[id]; !ok {
		return ports.ErrItineraryNotFound
	}
	delete(s.states, id)
	return nil
}
