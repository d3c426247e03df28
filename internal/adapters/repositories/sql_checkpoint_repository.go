package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"terminal-itinerary-service/internal/domain"
	"terminal-itinerary-service/internal/platform/obs"
)

// SQLCheckpointRepository reads the catalog from PostgreSQL through the pgx stdlib driver.
type SQLCheckpointRepository struct {
	DB *sql.DB
}

func NewSQLCheckpointRepository(db *sql.DB) *SQLCheckpointRepository {
	return &SQLCheckpointRepository{DB: db}
}

func (s *SQLCheckpointRepository) ListCheckpoints(ctx context.Context) (_ []domain.Checkpoint, err error) {
	defer obs.Time(ctx, "catalog.sql.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql checkpoint repository: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, listCheckpointsQuery)
	if err != nil {
		return nil, fmt.Errorf("list checkpoints: query checkpoints table: %w", err)
	}
	defer rows.Close()

	return scanCheckpoints(rows)
}
