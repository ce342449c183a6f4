package doccorpus

import (
	"log/slog"
	"regexp"
	"sort"
)

// PatternCategory names a bucket of recurring documentation idioms.
type PatternCategory string

// The fixed category set for pattern tagging.
const (
	CategoryConfigurationWarnings PatternCategory = "configuration_warnings"
	CategoryUIElements            PatternCategory = "ui_elements"
	CategoryFeatureRequirements   PatternCategory = "feature_requirements"
	CategoryPermissions           PatternCategory = "permissions"
)

// PatternCategories lists all categories in stable order.
func PatternCategories() []PatternCategory {
	return []PatternCategory{
		CategoryConfigurationWarnings,
		CategoryUIElements,
		CategoryFeatureRequirements,
		CategoryPermissions,
	}
}

// DefaultPatterns returns the case-insensitive regular expressions used
// to spot common documentation snippets, keyed by category.
func DefaultPatterns() map[PatternCategory][]string {
	return map[PatternCategory][]string{
		CategoryConfigurationWarnings: {
			`If you PUT a configuration to \w+, any.*?will be deleted`,
			`PATCH requests are not currently supported`,
			`configuration settings not included in the new.*?will be deleted`,
		},
		CategoryUIElements: {
			`menu in the top left`,
			`navigation bar`,
			`menu items`,
			`view preferences`,
			`custom views`,
		},
		CategoryFeatureRequirements: {
			`feature enabled for your tenant`,
			`feature must be enabled`,
			`requires the.*?feature`,
		},
		CategoryPermissions: {
			`permission required`,
			`user must have.*?permission`,
			`requires.*?permission`,
		},
	}
}

// Tagger categorizes recurring documentation idioms into auxiliary
// buckets using regular expressions. Tagging is best-effort metadata
// extraction; it never gates inclusion of a section.
type Tagger struct {
	patterns map[PatternCategory][]*regexp.Regexp
	logger   *slog.Logger
}

// NewTagger compiles the given patterns case-insensitively. A pattern
// that fails to compile is logged and skipped; it never prevents the
// remaining patterns from tagging. Passing nil patterns uses
// DefaultPatterns.
func NewTagger(patterns map[PatternCategory][]string, logger *slog.Logger) *Tagger {
	if patterns == nil {
		patterns = DefaultPatterns()
	}
	if logger == nil {
		logger = slog.Default()
	}

	compiled := make(map[PatternCategory][]*regexp.Regexp, len(patterns))
	for category, exprs := range patterns {
		for _, expr := range exprs {
			re, err := regexp.Compile("(?i)" + expr)
			if err != nil {
				logger.Warn("skipping malformed pattern",
					"category", string(category),
					"pattern", expr,
					"err", err,
				)
				continue
			}
			compiled[category] = append(compiled[category], re)
		}
	}

	return &Tagger{patterns: compiled, logger: logger}
}

// Tag matches content against every pattern in every category and
// returns the matched substrings per category, deduplicated and sorted.
// Categories with no matches are omitted.
func (t *Tagger) Tag(content string) map[PatternCategory][]string {
	result := make(map[PatternCategory][]string)
	if content == "" {
		return result
	}

	for category, res := range t.patterns {
		seen := make(map[string]bool)
		for _, re := range res {
			for _, match := range re.FindAllString(content, -1) {
				seen[match] = true
			}
		}
		if len(seen) == 0 {
			continue
		}
		matches := make([]string, 0, len(seen))
		for m := range seen {
			matches = append(matches, m)
		}
		sort.Strings(matches)
		result[category] = matches
	}

	return result
}
