package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres implements Repository on the app_settings table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a settings repository backed by PostgreSQL.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Compile-time check that Postgres implements Repository.
var _ Repository = (*Postgres)(nil)

// Get retrieves a setting value.
func (r *Postgres) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	query := `
		SELECT value
		FROM app_settings
		WHERE namespace = $1 AND key = $2`

	var value string
	err := r.pool.QueryRow(ctx, query, namespace, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get setting %s.%s: %w", namespace, key, err)
	}

	return value, true, nil
}

// Set inserts or replaces a setting value.
func (r *Postgres) Set(ctx context.Context, namespace, key, value string) error {
	query := `
		INSERT INTO app_settings (namespace, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, namespace, key, value); err != nil {
		return fmt.Errorf("set setting %s.%s: %w", namespace, key, err)
	}
	return nil
}

// Ping checks the database connection.
func (r *Postgres) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
