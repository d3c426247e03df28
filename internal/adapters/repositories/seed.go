package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"terminal-itinerary-service/internal/domain"
)

// CheckpointSeed mirrors one record of the catalog seed file.
type CheckpointSeed struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	Location          string  `json:"location"`
	Description       string  `json:"description"`
	Terminal          string  `json:"terminal"`
	X                 float64 `json:"x"`
	Y                 float64 `json:"y"`
	IsMandatory       bool    `json:"isMandatory"`
	EstimatedDuration *int    `json:"estimatedDuration,omitempty"`
}

func (s CheckpointSeed) toDomain() domain.Checkpoint {
	return domain.Checkpoint{
		ID:               s.ID,
		Name:             s.Name,
		Category:         domain.Category(s.Type),
		Location:         s.Location,
		Description:      s.Description,
		Terminal:         s.Terminal,
		X:                s.X,
		Y:                s.Y,
		Mandatory:        s.IsMandatory,
		EstimatedMinutes: s.EstimatedDuration,
	}
}

// LoadSeedFile reads and validates a catalog seed file.
// Validation is the same as for a live catalog, so a bad seed never reaches the database.
func LoadSeedFile(jsonPath string) ([]domain.Checkpoint, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", jsonPath, err)
	}

	var data []CheckpointSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load seed: parse json: %w", err)
	}

	checkpoints := make([]domain.Checkpoint, 0, len(data))
	for _, item := range data {
		checkpoints = append(checkpoints, item.toDomain())
	}

	catalog, err := domain.NewCatalog(checkpoints)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}

	return catalog.All(), nil
}
