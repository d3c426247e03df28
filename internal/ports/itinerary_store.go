package ports

import (
	"context"
	"errors"
	"terminal-itinerary-service/internal/domain"
)

var ErrItineraryNotFound = errors.New("itinerary not found")

// Contract for persisting itinerary sessions between requests.
type ItineraryStore interface {
	// Return the saved state or ErrItineraryNotFound.
	Load(ctx context.Context, id string) (domain.ItineraryState, error)
	// Save creates or replaces the state for id.
	Save(ctx context.Context, id string, state domain.ItineraryState) error
	Delete(ctx context.Context, id string) error
}
