// Package bloom provides probabilistic URL deduplication for the crawl
// frontier.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter wraps a Bloom filter keyed by fragment-stripped URLs, so URLs
// differing only in their fragment count as one page.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a Filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL in the filter.
func (f *Filter) Add(url string) {
	f.f.AddString(key(url))
}

// Test returns true if the URL might have been added. False positives
// are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(key(url))
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// key strips the fragment so in-page anchors dedupe to their page.
func key(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
