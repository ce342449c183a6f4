// Package corpus assembles extracted sections into the final
// deduplicated, sorted corpus and serializes it to Markdown and JSON.
package corpus

import (
	"log/slog"
	"sort"
	"time"

	"github.com/fwojciec/doccorpus"
)

// Assembler merges sections from a crawl into a Corpus.
type Assembler struct {
	tagger *doccorpus.Tagger
	logger *slog.Logger
}

// NewAssembler creates an Assembler. A nil tagger disables pattern
// collection.
func NewAssembler(tagger *doccorpus.Tagger, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{tagger: tagger, logger: logger}
}

// Assemble filters, deduplicates and sorts sections.
//
// Failed/timeout sections are kept as visible markers. Non-failed
// sections with an empty title or empty content are logged and dropped.
// Duplicate detection is case-insensitive on the canonical title;
// first-seen wins. The result is sorted ascending by case-folded
// canonical title, so two calls over the same input produce identical
// ordering.
func (a *Assembler) Assemble(sections []doccorpus.Section, scrapedAt time.Time) *doccorpus.Corpus {
	c := &doccorpus.Corpus{
		ScrapedAt:      scrapedAt,
		GeneratedAt:    time.Now(),
		CommonPatterns: make(map[doccorpus.PatternCategory][]string),
	}

	seen := make(map[string]bool)
	patternSeen := make(map[doccorpus.PatternCategory]map[string]bool)

	for _, section := range sections {
		if !section.Kind.Failed() && (section.Title == "" || section.Content == "") {
			a.logger.Warn("dropping section with empty title or content",
				"url", section.SourceURL,
				"kind", string(section.Kind),
			)
			c.Dropped++
			continue
		}

		title := doccorpus.CanonicalTitle(section.Title)
		if title == "" {
			title = doccorpus.FallbackTitle(section.SourceURL)
		}
		key := doccorpus.TitleKey(title)

		if seen[key] {
			a.logger.Info("dropping duplicate title",
				"title", title,
				"url", section.SourceURL,
			)
			c.Duplicates++
			continue
		}
		seen[key] = true

		kept := section
		kept.Title = title
		c.Pages = append(c.Pages, kept)

		if a.tagger != nil && !kept.Kind.Failed() {
			for category, matches := range a.tagger.Tag(kept.Content) {
				if patternSeen[category] == nil {
					patternSeen[category] = make(map[string]bool)
				}
				for _, m := range matches {
					if patternSeen[category][m] {
						continue
					}
					patternSeen[category][m] = true
					c.CommonPatterns[category] = append(c.CommonPatterns[category], m)
				}
			}
		}
	}

	sort.SliceStable(c.Pages, func(i, j int) bool {
		return doccorpus.TitleKey(c.Pages[i].Title) < doccorpus.TitleKey(c.Pages[j].Title)
	})
	for _, matches := range c.CommonPatterns {
		sort.Strings(matches)
	}

	return c
}
