package doccorpus

import (
	"regexp"
	"strings"
)

var (
	numericSuffixRe = regexp.MustCompile(`\s*\(\d+\)$`)
	whitespaceRunRe = regexp.MustCompile(`\s+`)
)

// CanonicalTitle cleans and standardizes a page or section title:
// trailing parenthesized numeric suffixes ("Title (2)") are stripped and
// internal whitespace runs collapse to single spaces.
//
// Duplicate detection elsewhere always compares canonical titles
// case-insensitively.
func CanonicalTitle(raw string) string {
	if raw == "" {
		return ""
	}
	title := numericSuffixRe.ReplaceAllString(raw, "")
	title = whitespaceRunRe.ReplaceAllString(title, " ")
	return strings.TrimSpace(title)
}

// TitleKey returns the case-insensitive comparison key for a title.
func TitleKey(raw string) string {
	return strings.ToLower(CanonicalTitle(raw))
}
