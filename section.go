package doccorpus

import (
	"net/url"
	"strings"
	"unicode"
)

// ExtractionKind records which strategy produced a section. It drives
// downstream filtering and diagnostics.
type ExtractionKind string

// Extraction provenance tags.
const (
	// KindNavigation marks sections produced by clicking through a
	// navigation/TOC sidebar.
	KindNavigation ExtractionKind = "navigation_section"

	// KindHeader marks sections segmented by h1-h3 document headings.
	KindHeader ExtractionKind = "header_section"

	// KindFullPage marks a whole page captured as a single section.
	KindFullPage ExtractionKind = "full_page"

	// KindFailed marks a section whose content is a human-readable
	// error message rather than page text. Failed sections are kept in
	// the output for visibility rather than dropped silently.
	KindFailed ExtractionKind = "extraction_failed"

	// KindTimeout marks a page that did not load within the page
	// timeout.
	KindTimeout ExtractionKind = "timeout"
)

// Failed reports whether the kind represents an extraction failure
// rather than real page content.
func (k ExtractionKind) Failed() bool {
	return k == KindFailed || k == KindTimeout
}

// Section is the atomic extracted unit: one logical piece of
// documentation content with its provenance.
//
// Sections are never mutated after creation. Content is cleaned exactly
// once at extraction time; re-cleaning at save time is avoided so that
// normalization is never applied twice.
type Section struct {
	// Title is the human-readable heading. Non-empty after
	// normalization; synthesized from the URL when the page offers
	// none.
	Title string `json:"title"`

	// Content is the normalized Markdown body. For failed/timeout
	// sections it carries the error message instead.
	Content string `json:"content"`

	// SourceURL is the originating page URL, with a fragment
	// identifier when the section is a sub-region of a page.
	SourceURL string `json:"url"`

	// Kind tags the strategy that produced the section.
	Kind ExtractionKind `json:"source_type"`
}

// Validate returns an error if the section contains invalid fields.
func (s *Section) Validate() error {
	if s.SourceURL == "" {
		return Errorf(EINVALID, "section source URL required")
	}
	if s.Kind == "" {
		return Errorf(EINVALID, "section extraction kind required")
	}
	if !s.Kind.Failed() && s.Content == "" {
		return Errorf(EINVALID, "section content required")
	}
	return nil
}

// Slug creates a URL/anchor-safe derivation of a title: lowercase,
// each space becomes a hyphen, anything that is not a word character
// or a hyphen is stripped. Runs are kept as-is so anchors stay stable
// for titles with doubled spacing ("A  B" yields "a--b").
func Slug(title string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r == ' ':
			sb.WriteRune('-')
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-':
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// FallbackTitle synthesizes a title from the last path segment of a
// URL, for pages that expose no usable title of their own.
// "https://example.com/docs/loan-accounts" becomes "Loan Accounts".
func FallbackTitle(rawURL string) string {
	segment := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		segment = strings.Trim(u.Path, "/")
	}
	if idx := strings.LastIndex(segment, "/"); idx != -1 {
		segment = segment[idx+1:]
	}
	segment = strings.ReplaceAll(segment, "-", " ")
	segment = strings.ReplaceAll(segment, "_", " ")
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return "Untitled Document"
	}

	words := strings.Fields(segment)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
