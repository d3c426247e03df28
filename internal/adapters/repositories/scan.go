package repositories

import (
	"database/sql"
	"fmt"
	"terminal-itinerary-service/internal/domain"
)

const listCheckpointsQuery = `
	SELECT
		checkpoint_id,
		name,
		category,
		location,
		description,
		terminal,
		x,
		y,
		is_mandatory,
		estimated_minutes
	FROM checkpoints
	ORDER BY seq, checkpoint_id;
	`

func scanCheckpoints(rows *sql.Rows) ([]domain.Checkpoint, error) {
	checkpoints := make([]domain.Checkpoint, 0, 32)
	for rows.Next() {
		var (
			cp       domain.Checkpoint
			category string
			minutes  sql.NullInt64
		)
		err := rows.Scan(
			&cp.ID, &cp.Name, &category, &cp.Location, &cp.Description,
			&cp.Terminal, &cp.X, &cp.Y, &cp.Mandatory, &minutes,
		)
		if err != nil {
			return nil, fmt.Errorf("list checkpoints: scan row: %w", err)
		}

		cp.Category = domain.Category(category)
		if minutes.Valid {
			cp.EstimatedMinutes = domain.Minutes(int(minutes.Int64))
		}
		checkpoints = append(checkpoints, cp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list checkpoints: row iteration: %w", err)
	}

	return checkpoints, nil
}

func nullMinutes(cp domain.Checkpoint) sql.NullInt64 {
	if cp.EstimatedMinutes == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*cp.EstimatedMinutes), Valid: true}
}
