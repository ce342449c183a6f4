package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fwojciec/doccorpus"
)

// DefaultNavSelectors is the ordered list of structural selectors used
// to locate a navigation/table-of-contents element. The first visible,
// non-empty match wins.
func DefaultNavSelectors() []string {
	return []string{
		"nav",
		".sidebar",
		".toc",
		".navigation",
		"#sidebar",
		".sidebar-menu",
		".left-menu",
	}
}

// DefaultSectionSelectors is the ordered list of selectors used to
// locate the content region revealed by clicking a navigation entry.
func DefaultSectionSelectors() []string {
	return []string{
		".content-section",
		"main",
		".main-content",
		"article",
	}
}

var _ Strategy = (*Navigation)(nil)

// Navigation extracts one section per navigation entry: it clicks each
// sidebar/TOC link to reveal the corresponding content region and
// captures that region as Markdown.
//
// A per-entry failure (click fails, container missing, conversion
// error) emits a failed section for that entry rather than aborting the
// page.
type Navigation struct {
	Converter        doccorpus.Converter
	NavSelectors     []string
	ContentSelectors []string
	Logger           *slog.Logger
}

// Name returns the strategy's identifier.
func (s *Navigation) Name() string { return "navigation" }

// Extract locates the navigation element and walks its entries in DOM
// order.
func (s *Navigation) Extract(ctx context.Context, page doccorpus.Page) ([]doccorpus.Section, error) {
	navSelectors := s.NavSelectors
	if navSelectors == nil {
		navSelectors = DefaultNavSelectors()
	}
	contentSelectors := s.ContentSelectors
	if contentSelectors == nil {
		contentSelectors = DefaultSectionSelectors()
	}

	nav, err := firstVisible(ctx, page, navSelectors)
	if err != nil {
		return nil, doccorpus.Errorf(doccorpus.ENOTFOUND, "no navigation element found")
	}

	entries, err := nav.Elements(ctx, "a")
	if err != nil {
		return nil, err
	}

	var sections []doccorpus.Section
	for _, entry := range entries {
		label, err := entry.Text(ctx)
		if err != nil {
			continue
		}
		title := strings.TrimSpace(label)
		if title == "" {
			continue
		}

		sections = append(sections, s.extractEntry(ctx, page, entry, title, contentSelectors))
	}

	if len(sections) == 0 {
		return nil, doccorpus.Errorf(doccorpus.ENOTFOUND, "navigation has no usable entries")
	}
	return sections, nil
}

// extractEntry clicks one navigation entry and captures the revealed
// content region.
func (s *Navigation) extractEntry(ctx context.Context, page doccorpus.Page, entry doccorpus.Element, title string, contentSelectors []string) doccorpus.Section {
	fragmentURL := page.URL() + "#" + doccorpus.Slug(title)

	if err := entry.Click(ctx); err != nil {
		return s.failedEntry(page, title, fmt.Errorf("clicking navigation entry: %w", err))
	}

	container, err := firstVisible(ctx, page, contentSelectors)
	if err != nil {
		return s.failedEntry(page, title, fmt.Errorf("locating section content: %w", err))
	}

	html, err := container.HTML(ctx)
	if err != nil {
		return s.failedEntry(page, title, fmt.Errorf("reading section content: %w", err))
	}

	markdown, err := s.Converter.Convert(html)
	if err != nil {
		return s.failedEntry(page, title, fmt.Errorf("converting section content: %w", err))
	}

	return doccorpus.Section{
		Title:     title,
		Content:   doccorpus.NormalizeText(markdown),
		SourceURL: fragmentURL,
		Kind:      doccorpus.KindNavigation,
	}
}

func (s *Navigation) failedEntry(page doccorpus.Page, title string, err error) doccorpus.Section {
	if s.Logger != nil {
		s.Logger.Warn("navigation entry extraction failed",
			"url", page.URL(),
			"entry", title,
			"err", err,
		)
	}
	return doccorpus.Section{
		Title:     title,
		Content:   fmt.Sprintf("Error extracting content: %v", err),
		SourceURL: page.URL(),
		Kind:      doccorpus.KindFailed,
	}
}
