package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doccorpus"
)

// Ensure LoggingCache implements doccorpus.Cache.
var _ doccorpus.Cache = (*LoggingCache)(nil)

// LoggingCache wraps a Cache with hit/miss logging.
type LoggingCache struct {
	next   doccorpus.Cache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next doccorpus.Cache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache and logs the outcome.
func (c *LoggingCache) Get(ctx context.Context, url string) (page *doccorpus.CachedPage, err error) {
	defer func(begin time.Time) {
		outcome := "hit"
		if doccorpus.ErrorCode(err) == doccorpus.ENOTFOUND {
			outcome = "miss"
		} else if err != nil {
			outcome = "error"
		}
		sections := 0
		if page != nil {
			sections = len(page.Sections)
		}
		c.logger.Debug("cache get",
			"url", url,
			"outcome", outcome,
			"sections", sections,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Get(ctx, url)
}

// Put delegates to the wrapped cache and logs the operation.
func (c *LoggingCache) Put(ctx context.Context, url string, page *doccorpus.CachedPage) (err error) {
	defer func(begin time.Time) {
		sections := 0
		if page != nil {
			sections = len(page.Sections)
		}
		c.logger.Debug("cache put",
			"url", url,
			"sections", sections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Put(ctx, url, page)
}
