package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/doccorpus"
	"github.com/fwojciec/doccorpus/purell"
)

// Ensure Cache implements doccorpus.Cache at compile time.
var _ doccorpus.Cache = (*Cache)(nil)

// Cache stores extraction results in SQLite, one row per URL. It holds
// the same compressed payloads as the filesystem cache but scales
// better for crawls with tens of thousands of pages.
type Cache struct {
	db     *DB
	logger *slog.Logger
}

// NewCache creates a Cache backed by an open DB.
func NewCache(db *DB, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{db: db, logger: logger}
}

// Get returns the page previously stored for the URL. Corrupted rows
// are deleted and reported as misses.
func (c *Cache) Get(ctx context.Context, url string) (*doccorpus.CachedPage, error) {
	hash := urlHash(url)

	var payload []byte
	err := c.db.QueryRowContext(ctx,
		`SELECT payload FROM cache WHERE url_hash = ?`, hash,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, doccorpus.Errorf(doccorpus.ENOTFOUND, "cache entry not found")
	}
	if err != nil {
		return nil, err
	}

	page, err := doccorpus.DecodeCachedPage(payload)
	if err != nil {
		c.logger.Warn("removing corrupted cache row", "url", url, "err", err)
		_, _ = c.db.ExecContext(ctx, `DELETE FROM cache WHERE url_hash = ?`, hash)
		return nil, doccorpus.Errorf(doccorpus.ENOTFOUND, "cache entry not found")
	}
	return page, nil
}

// Put stores the page extracted from the URL, replacing any prior row.
func (c *Cache) Put(ctx context.Context, url string, page *doccorpus.CachedPage) error {
	payload, err := doccorpus.EncodeCachedPage(page)
	if err != nil {
		return err
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO cache (url_hash, url, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (url_hash) DO UPDATE SET
			url = excluded.url,
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		urlHash(url), url, payload, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// urlHash matches the filesystem cache's key derivation.
func urlHash(url string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(purell.Key(url)))
}
