// Package purell canonicalizes URLs so different spellings of the same
// page share one cache identity.
package purell

import "github.com/PuerkitoBio/purell"

// Normalize returns the canonical form of a URL: lowercased scheme and
// host, default port and fragment removed, query sorted, dot segments
// and duplicate slashes resolved.
func Normalize(url string) (string, error) {
	flags := purell.FlagLowercaseScheme |
		purell.FlagLowercaseHost |
		purell.FlagRemoveDefaultPort |
		purell.FlagRemoveFragment |
		purell.FlagDecodeUnnecessaryEscapes |
		purell.FlagSortQuery |
		purell.FlagRemoveDuplicateSlashes |
		purell.FlagRemoveDotSegments

	return purell.NormalizeURLString(url, flags)
}

// Key derives a stable cache key: the normalized URL, or the raw URL
// when normalization fails.
func Key(url string) string {
	normalized, err := Normalize(url)
	if err != nil {
		return url
	}
	return normalized
}
