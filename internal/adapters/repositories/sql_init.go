package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the PostgreSQL schema.
func InitSQLSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS checkpoints (
		checkpoint_id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		terminal TEXT NOT NULL DEFAULT '',
		x DOUBLE PRECISION NOT NULL CHECK (x BETWEEN 0 AND 100),
		y DOUBLE PRECISION NOT NULL CHECK (y BETWEEN 0 AND 100),
		is_mandatory BOOLEAN NOT NULL DEFAULT FALSE,
		estimated_minutes INTEGER
	);
	`

	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init schema: create checkpoints: %w", err)
	}

	return nil
}

// Populate the PostgreSQL catalog from a JSON file, upserting by checkpoint id.
func SeedSQLFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	if db == nil {
		return errors.New("seed checkpoints: DB is nil")
	}

	checkpoints, err := LoadSeedFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed checkpoints: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed checkpoints: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO checkpoints (
		checkpoint_id, seq, name, category, location, description,
		terminal, x, y, is_mandatory, estimated_minutes
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (checkpoint_id) DO UPDATE
	SET seq = EXCLUDED.seq,
		name = EXCLUDED.name,
		category = EXCLUDED.category,
		location = EXCLUDED.location,
		description = EXCLUDED.description,
		terminal = EXCLUDED.terminal,
		x = EXCLUDED.x,
		y = EXCLUDED.y,
		is_mandatory = EXCLUDED.is_mandatory,
		estimated_minutes = EXCLUDED.estimated_minutes;
	`)
	if err != nil {
		return fmt.Errorf("seed checkpoints: db prepare: %w", err)
	}
	defer stmt.Close()

	for i, cp := range checkpoints {
		_, err := stmt.ExecContext(ctx,
			cp.ID, i, cp.Name, string(cp.Category), cp.Location, cp.Description,
			cp.Terminal, cp.X, cp.Y, cp.Mandatory, nullMinutes(cp),
		)
		if err != nil {
			return fmt.Errorf("seed checkpoints: upsert checkpoint_id=%q: %w", cp.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed checkpoints: commit: %w", err)
	}

	return nil
}
