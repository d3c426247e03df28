package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"terminal-itinerary-service/internal/domain"
	"terminal-itinerary-service/internal/platform/obs"
)

// SQLite-backed implementation of the CheckpointRepository port.
type SqliteCheckpointRepository struct{ DB *sql.DB }

func NewSqliteCheckpointRepository(db *sql.DB) *SqliteCheckpointRepository {
	return &SqliteCheckpointRepository{DB: db}
}

// Return all checkpoints stored in the database, in seed order.
func (s *SqliteCheckpointRepository) ListCheckpoints(ctx context.Context) (_ []domain.Checkpoint, err error) {
	defer obs.Time(ctx, "catalog.sqlite.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite checkpoint repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, listCheckpointsQuery)
	if err != nil {
		return nil, fmt.Errorf("list checkpoints: query checkpoints table: %w", err)
	}
	defer rows.Close()

	return scanCheckpoints(rows)
}
