package ports

import (
	"context"
	"terminal-itinerary-service/internal/domain"
)

// Input for a free-text checkpoint recommendation.
// Candidates holds only checkpoints the traveler has not selected yet.
type SuggestionRequest struct {
	Query      string
	Language   string
	Candidates []domain.Checkpoint
}

// Raw provider answer: a reply text and the recommended checkpoint ids.
type SuggestionResult struct {
	Text          string
	CheckpointIDs []string
}

// Contract for an external recommendation service (e.g. a generative model).
type SuggestionProvider interface {
	Suggest(ctx context.Context, req SuggestionRequest) (SuggestionResult, error)
}
