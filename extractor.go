package doccorpus

import "context"

// Extractor produces an ordered sequence of sections from a loaded
// page.
//
// The contract guarantees a non-empty result and never returns an
// error: total failure is communicated through a single section with
// KindFailed (or KindTimeout upstream), carrying the error message as
// content. Visibility over silence.
type Extractor interface {
	Extract(ctx context.Context, page Page) []Section
}

// ContentExtractor removes boilerplate (nav, footer, sidebar, ads) from
// raw HTML and returns the main content region. It backs the full-page
// fallback when no known content selector matches.
type ContentExtractor interface {
	// ExtractMain returns the page title from metadata and the main
	// content as clean HTML.
	ExtractMain(html string) (title, contentHTML string, err error)
}
