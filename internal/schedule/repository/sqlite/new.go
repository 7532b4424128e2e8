package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"daily-planner/internal/schedule/repository"
	"daily-planner/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS user_states (
	user_id              TEXT PRIMARY KEY,
	schedule             TEXT,
	conversation_history TEXT NOT NULL DEFAULT '[]',
	updated_at           INTEGER NOT NULL
);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens (or creates) the SQLite database at path and applies the schema.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// New creates a new SQLite-backed Repository for the schedule domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("schedule/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("schedule/repository/sqlite.%s", method)
}
