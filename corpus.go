package doccorpus

import "time"

// Corpus is the deduplicated, sorted collection of all sections
// produced by one run, together with the common pattern buckets.
type Corpus struct {
	// ScrapedAt is when scraping started.
	ScrapedAt time.Time

	// GeneratedAt is when the corpus was assembled.
	GeneratedAt time.Time

	// Pages holds the kept sections sorted by case-insensitive
	// canonical title. No two entries share the same title key;
	// first-seen wins and later duplicates are dropped.
	Pages []Section

	// CommonPatterns maps each pattern category to its deduplicated,
	// sorted matched snippets.
	CommonPatterns map[PatternCategory][]string

	// Duplicates counts sections dropped because their canonical title
	// was already seen.
	Duplicates int

	// Dropped counts non-failed sections discarded for having an empty
	// title or empty content.
	Dropped int
}
