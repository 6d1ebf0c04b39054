// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a local log of completed conversions in SQLite.
// Recording is best effort: a broken history database must never fail a
// conversion, so callers log store errors as warnings.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/file-forge/pkg/types"
)

// Store manages the operation history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const stmt = `CREATE TABLE IF NOT EXISTS operations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		op TEXT NOT NULL,
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		input_size INTEGER NOT NULL,
		output_size INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record appends one completed operation.
func (s *Store) Record(ctx context.Context, rec types.Record) error {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO operations (op, input, output, input_size, output_size, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(rec.Op), rec.Input, rec.Output, rec.InputSize, rec.OutputSize,
		createdAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting history record: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first, up to limit.
func (s *Store) List(ctx context.Context, limit int) ([]types.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, op, input, output, input_size, output_size, created_at
		 FROM operations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var rec types.Record
		var op, createdAt string
		if err := rows.Scan(&rec.ID, &op, &rec.Input, &rec.Output, &rec.InputSize, &rec.OutputSize, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history record: %w", err)
		}
		rec.Op = types.Operation(op)
		if ts, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
			rec.CreatedAt = ts
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
