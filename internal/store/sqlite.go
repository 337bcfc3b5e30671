package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/smd-system/ai-service/internal/task"
)

// SQLite stores task records in a local sqlite database so results
// survive a process restart. Records are kept as JSON alongside the
// indexed id and status columns.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed initializes) a sqlite-backed store
// at the given path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS task_records (
		task_id TEXT PRIMARY KEY,
		status  TEXT NOT NULL,
		record  TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize sqlite schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Put writes a record, replacing any previous record for the id.
func (s *SQLite) Put(ctx context.Context, record task.Record) error {
	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode task record: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO task_records (task_id, status, record) VALUES (?, ?, ?)
		 ON CONFLICT(task_id) DO UPDATE SET status = excluded.status, record = excluded.record`,
		record.TaskID, string(record.Status), string(encoded))
	if err != nil {
		return fmt.Errorf("failed to write task record: %w", err)
	}
	return nil
}

// Get returns the record for the id, or task.ErrTaskNotFound.
func (s *SQLite) Get(ctx context.Context, taskID string) (task.Record, error) {
	var encoded string
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM task_records WHERE task_id = ?`, taskID).Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return task.Record{}, task.ErrTaskNotFound
	}
	if err != nil {
		return task.Record{}, fmt.Errorf("failed to read task record: %w", err)
	}

	var record task.Record
	if err := json.Unmarshal([]byte(encoded), &record); err != nil {
		return task.Record{}, fmt.Errorf("failed to decode task record: %w", err)
	}
	return record, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
