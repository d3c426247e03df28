package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCheckpointsQuery := `
	CREATE TABLE IF NOT EXISTS checkpoints (
		checkpoint_id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		terminal TEXT NOT NULL DEFAULT '',
		x REAL NOT NULL CHECK (x BETWEEN 0 AND 100),
		y REAL NOT NULL CHECK (y BETWEEN 0 AND 100),
		is_mandatory INTEGER NOT NULL DEFAULT 0,
		estimated_minutes INTEGER
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_checkpoints_seq
    ON checkpoints(seq);
	`

	statements := []string{
		createCheckpointsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database with checkpoint data from a JSON file.
// File order becomes catalog order.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	if db == nil {
		return errors.New("seed checkpoints: DB is nil")
	}

	checkpoints, err := LoadSeedFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed checkpoints: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed checkpoints: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO checkpoints (
		checkpoint_id,
		seq,
		name,
		category,
		location,
		description,
		terminal,
		x,
		y,
		is_mandatory,
		estimated_minutes
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed checkpoints: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, cp := range checkpoints {
		_, err := stmt.Exec(
			cp.ID, i, cp.Name, string(cp.Category), cp.Location, cp.Description,
			cp.Terminal, cp.X, cp.Y, cp.Mandatory, nullMinutes(cp),
		)
		if err != nil {
			return fmt.Errorf("seed checkpoints: insert checkpoint_id=%q: %w", cp.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed checkpoints: commit tx: %w", err)
	}

	return nil
}
