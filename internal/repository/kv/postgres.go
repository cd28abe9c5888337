package kv

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Pool interface for abstracting pgx connection pool
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store on the kv_store table
type PostgresStore struct {
	pool Pool
}

// NewPostgresStore creates a new instance of PostgresStore
func NewPostgresStore(pool Pool) *PostgresStore {
	return &PostgresStore{
		pool: pool,
	}
}

// Get retrieves the value stored under key
func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	sql := "SELECT value FROM kv_store WHERE key = $1"
	row := s.pool.QueryRow(ctx, sql, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", notFound(key)
		}
		return "", handlePostgreSQLError(err, "failed to get value")
	}

	return value, nil
}

// Set upserts the value stored under key
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	sql := `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := s.pool.Exec(ctx, sql, key, value); err != nil {
		return handlePostgreSQLError(err, "failed to set value")
	}
	return nil
}

// Close closes the underlying pool
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
