package ports

import (
	"context"
	"terminal-itinerary-service/internal/domain"
)

// Port: a boundary for loading the static checkpoint catalog.
type CheckpointRepository interface {
	// Return every checkpoint in catalog order.
	ListCheckpoints(ctx context.Context) ([]domain.Checkpoint, error)
}
