// Package store persists mapping documents: Postgres when DATABASE_URL is
// configured, JSON files otherwise.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB opens the shared connection pool from DATABASE_URL and verifies
// it with a ping. Optional: callers that skip InitDB run file-only.
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		url := os.Getenv("DATABASE_URL")
		if url == "" {
			err = fmt.Errorf("STORE_DB_ERROR: DATABASE_URL not set")
			return
		}
		cfg, parseErr := pgxpool.ParseConfig(url)
		if parseErr != nil {
			err = fmt.Errorf("STORE_DB_ERROR: bad DATABASE_URL: %w", parseErr)
			return
		}
		pool, err = pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			return
		}
		if pingErr := pool.Ping(ctx); pingErr != nil {
			pool.Close()
			pool = nil
			err = fmt.Errorf("STORE_DB_ERROR: ping failed: %w", pingErr)
		}
	})
	return err
}

// GetPool returns the shared pool, nil when InitDB was never called or
// failed. ResultCache treats a nil pool as file-only mode.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close releases the shared pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
