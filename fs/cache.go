// Package fs provides filesystem-backed storage: the extraction cache,
// the corpus writer, and the archive upload sink.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/doccorpus"
	"github.com/fwojciec/doccorpus/purell"
)

// Ensure Cache implements doccorpus.Cache at compile time.
var _ doccorpus.Cache = (*Cache)(nil)

// Cache stores extraction results as zlib-compressed JSON files, one
// per URL, keyed by a hash of the normalized URL. Entries have no
// expiry; clearing the cache directory forces a full re-crawl.
type Cache struct {
	dir    string
	logger *slog.Logger
}

// NewCache creates a Cache rooted at dir, creating it if needed.
func NewCache(dir string, logger *slog.Logger) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{dir: dir, logger: logger}, nil
}

// Get returns the page previously stored for the URL. Corrupted
// entries are deleted and reported as misses.
func (c *Cache) Get(ctx context.Context, url string) (*doccorpus.CachedPage, error) {
	path := c.path(url)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, doccorpus.Errorf(doccorpus.ENOTFOUND, "cache entry not found")
	}
	if err != nil {
		return nil, err
	}

	page, err := doccorpus.DecodeCachedPage(data)
	if err != nil {
		c.logger.Warn("removing corrupted cache entry", "url", url, "err", err)
		_ = os.Remove(path)
		return nil, doccorpus.Errorf(doccorpus.ENOTFOUND, "cache entry not found")
	}
	return page, nil
}

// Put stores the page extracted from the URL, replacing any prior
// entry.
func (c *Cache) Put(ctx context.Context, url string, page *doccorpus.CachedPage) error {
	data, err := doccorpus.EncodeCachedPage(page)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path(url), data, 0o644)
}

// path maps a URL to its cache file.
func (c *Cache) path(url string) string {
	return filepath.Join(c.dir, CacheKey(url)+".cache")
}

// CacheKey derives the stable cache key for a URL: the hex xxhash of
// its normalized form.
func CacheKey(url string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(purell.Key(url)))
}
