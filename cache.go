package doccorpus

import "context"

// CachedPage is one cache entry: the sections extracted from a page
// together with the outgoing links discovered on it. Caching the links
// keeps recursive discovery at full coverage on a warm cache; skipping
// the fetch must never shrink the crawl.
type CachedPage struct {
	Sections []Section        `json:"sections"`
	Links    []DiscoveredLink `json:"links,omitempty"`
}

// Cache persists extraction results between runs so unchanged pages are
// not re-fetched. Entries are keyed by a stable hash of the normalized
// URL and have no expiry: the cache is crawl-durable, not time-bound.
//
// Implementations must treat corrupted entries as misses (deleting the
// bad entry), never as errors.
type Cache interface {
	// Get returns the page previously stored for the URL.
	// Returns ENOTFOUND on a miss.
	Get(ctx context.Context, url string) (*CachedPage, error)

	// Put stores the page extracted from the URL, replacing any prior
	// entry.
	Put(ctx context.Context, url string, page *CachedPage) error
}
