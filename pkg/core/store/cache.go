package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResultCache persists mapping documents. Hybrid layout: Postgres when a
// pool is configured, file system otherwise (or additionally, for local
// inspection).
type ResultCache struct {
	pool    *pgxpool.Pool
	fileDir string
}

// NewResultCache creates a cache. With a nil pool and empty dir it defaults
// to .cache/finmap/documents.
func NewResultCache(pool *pgxpool.Pool, dir string) *ResultCache {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "finmap", "documents")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check ResultCache dir: %v\n", err)
		}
	}
	return &ResultCache{pool: pool, fileDir: dir}
}

// Save upserts a document keyed by ticker and period type. The file write
// goes through a temp file and rename so readers never see a torn document.
func (c *ResultCache) Save(ctx context.Context, doc *Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}

	if c.pool != nil {
		query := `
			INSERT INTO mapped_statements (ticker, period_type, document, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (ticker, period_type)
			DO UPDATE SET
				document = EXCLUDED.document,
				updated_at = EXCLUDED.updated_at
		`
		if _, err := c.pool.Exec(ctx, query, doc.Ticker, string(doc.PeriodType), data, time.Now()); err != nil {
			return fmt.Errorf("STORE_DB_ERROR: %w", err)
		}
	}

	if c.fileDir != "" {
		path := c.docPath(doc.Ticker, string(doc.PeriodType))
		tmp, err := os.CreateTemp(c.fileDir, ".tmp-doc-*")
		if err != nil {
			return fmt.Errorf("STORE_FILE_ERROR: %w", err)
		}
		if _, err := tmp.Write(data); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("STORE_FILE_ERROR: %w", err)
		}
		if err := tmp.Close(); err != nil {
			os.Remove(tmp.Name())
			return fmt.Errorf("STORE_FILE_ERROR: %w", err)
		}
		if err := os.Rename(tmp.Name(), path); err != nil {
			os.Remove(tmp.Name())
			return fmt.Errorf("STORE_FILE_ERROR: %w", err)
		}
	}
	return nil
}

// Load retrieves a document, nil on a cache miss.
func (c *ResultCache) Load(ctx context.Context, ticker, periodType string) (*Document, error) {
	if c.pool != nil {
		query := `
			SELECT document
			FROM mapped_statements
			WHERE ticker = $1 AND period_type = $2
			LIMIT 1
		`
		var data []byte
		err := c.pool.QueryRow(ctx, query, ticker, periodType).Scan(&data)
		if err == nil {
			return UnmarshalDocument(data)
		}
		// Miss in DB; fall through to file if one is configured.
	}

	if c.fileDir != "" {
		data, err := os.ReadFile(c.docPath(ticker, periodType))
		if os.IsNotExist(err) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("STORE_FILE_ERROR: %w", err)
		}
		return UnmarshalDocument(data)
	}
	return nil, nil
}

// List returns the tickers present in the cache for a period type.
func (c *ResultCache) List(ctx context.Context, periodType string) ([]string, error) {
	if c.pool != nil {
		rows, err := c.pool.Query(ctx, `SELECT ticker FROM mapped_statements WHERE period_type = $1 ORDER BY ticker`, periodType)
		if err != nil {
			return nil, fmt.Errorf("STORE_DB_ERROR: %w", err)
		}
		defer rows.Close()
		var out []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				return nil, fmt.Errorf("STORE_DB_ERROR: %w", err)
			}
			out = append(out, t)
		}
		return out, rows.Err()
	}

	if c.fileDir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(c.fileDir)
	if err != nil {
		return nil, fmt.Errorf("STORE_FILE_ERROR: %w", err)
	}
	suffix := "_" + strings.ToLower(periodType) + ".json"
	var out []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, suffix) {
			out = append(out, strings.ToUpper(strings.TrimSuffix(name, suffix)))
		}
	}
	return out, nil
}

func (c *ResultCache) docPath(ticker, periodType string) string {
	name := fmt.Sprintf("%s_%s.json", strings.ToLower(ticker), strings.ToLower(periodType))
	return filepath.Join(c.fileDir, name)
}
