// Package store provides PostgreSQL persistence for job postings and assessment runs.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the job_postings and assessments tables when they do
// not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS job_postings (
			id BIGSERIAL PRIMARY KEY,
			position_title TEXT NOT NULL,
			department_office TEXT NOT NULL DEFAULT '',
			education_requirements TEXT NOT NULL DEFAULT '',
			training_requirements TEXT NOT NULL DEFAULT '',
			experience_requirements TEXT NOT NULL DEFAULT '',
			eligibility_requirements TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS assessments (
			id BIGSERIAL PRIMARY KEY,
			run_id UUID NOT NULL,
			candidate_key TEXT NOT NULL,
			job_title TEXT NOT NULL,
			scores JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS assessments_run_id_idx ON assessments (run_id)`,
	}

	for _, statement := range statements {
		if _, err := s.pool.Exec(ctx, statement); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
