package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolio-site/infrastructure/cache"
	"portfolio-site/infrastructure/logger"
)

// EnsureCacheSchema creates the key/value cache table if not exists.
func EnsureCacheSchema(db *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS portfolio_cache (
        namespace TEXT NOT NULL,
        cache_key TEXT NOT NULL,
        value TEXT NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL,
        PRIMARY KEY (namespace, cache_key)
    )`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create portfolio_cache table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_portfolio_cache_updated_at ON portfolio_cache(updated_at)`); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed creating idx_portfolio_cache_updated_at")
	}

	return nil
}

// PostgresCacheBackend implements cache.Backend on a namespaced KV table.
// Entry timestamps and TTL policy live in the cache.Store; this layer only
// persists opaque strings.
type PostgresCacheBackend struct {
	db        *sql.DB
	namespace string
}

func NewPostgresCacheBackend(db *sql.DB, namespace string) *PostgresCacheBackend {
	return &PostgresCacheBackend{db: db, namespace: namespace}
}

func (b *PostgresCacheBackend) Get(ctx context.Context, key string) (string, error) {
	row := b.db.QueryRowContext(ctx,
		`SELECT value FROM portfolio_cache WHERE namespace=$1 AND cache_key=$2`,
		b.namespace, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", cache.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (b *PostgresCacheBackend) Set(ctx context.Context, key, value string) error {
	q := `INSERT INTO portfolio_cache(namespace, cache_key, value, updated_at)
          VALUES ($1,$2,$3,$4)
          ON CONFLICT (namespace, cache_key) DO UPDATE SET value=EXCLUDED.value, updated_at=EXCLUDED.updated_at`
	_, err := b.db.ExecContext(ctx, q, b.namespace, key, value, time.Now().UTC())
	return err
}

func (b *PostgresCacheBackend) Clear(ctx context.Context) error {
	_, err := b.db.ExecContext(ctx, `DELETE FROM portfolio_cache WHERE namespace=$1`, b.namespace)
	return err
}
