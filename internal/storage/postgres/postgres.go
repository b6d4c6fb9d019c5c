// Package postgres provides a PostgreSQL-backed implementation of storage.KV.
// The schema is applied by cmd/migrate, not on connect.
package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lg/nutrition-tracker-go-api/internal/storage"
)

var _ storage.KV = (*Store)(nil)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migration is one schema file, named YYYY-MM-DD-NNN-description.sql.
type Migration struct {
	Name string
	SQL  string
}

// Migrations returns the embedded schema files in filename order.
func Migrations() ([]Migration, error) {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := migrationFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		out = append(out, Migration{Name: name[len("migrations/"):], SQL: string(content)})
	}
	return out, nil
}

// Store implements storage.KV on the kv_store table.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a connection pool. A pool (not a single conn) survives the
// provider closing idle connections.
func New(ctx context.Context, dbURL string) (*Store, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse DB URL: %w", err)
	}
	// Simple protocol avoids "cached plan must not change result type" errors
	// from server-side prepared statement caches after schema changes.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Get returns the value stored under key, or storage.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.pool.QueryRow(ctx,
		"SELECT value FROM kv_store WHERE key = @key",
		pgx.NamedArgs{"key": key}).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return []byte(value), nil
}

// Set upserts the value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO kv_store (key, value, updated_at)
		 VALUES (@key, @value, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		pgx.NamedArgs{"key": key, "value": string(value)})
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}
