// Package doccorpus turns documentation websites into a combined
// Markdown/JSON corpus suitable for feeding a language model. It crawls
// a site (single-page or multi-page), extracts textual content per
// logical section through a cascade of strategies, normalizes and
// deduplicates it, and serializes the result with a table of contents.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., rod/,
// goquery/, htmltomarkdown/) or their domain concern (extract/,
// corpus/, crawl/).
package doccorpus
