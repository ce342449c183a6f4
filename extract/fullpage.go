package extract

import (
	"context"
	"strings"

	"github.com/fwojciec/doccorpus"
)

// DefaultPageSelectors is the ordered list of selectors used to locate
// the primary content container when the whole page is captured as one
// section. The document body is the last resort.
func DefaultPageSelectors() []string {
	return []string{
		"main",
		"article",
		".content",
		"#content",
		".documentation",
		"body",
	}
}

var _ Strategy = (*FullPage)(nil)

// FullPage treats the entire page as one section. It is the final
// fallback of the cascade.
type FullPage struct {
	Converter        doccorpus.Converter
	ContentSelectors []string

	// Fallback, when set, is used to strip boilerplate from the raw
	// HTML if no content selector matches.
	Fallback doccorpus.ContentExtractor
}

// Name returns the strategy's identifier.
func (s *FullPage) Name() string { return "fullpage" }

// Extract captures the page's primary content container as a single
// section. The title comes from the page's own metadata, falling back
// to a title derived from the URL's last path segment.
func (s *FullPage) Extract(ctx context.Context, page doccorpus.Page) ([]doccorpus.Section, error) {
	selectors := s.ContentSelectors
	if selectors == nil {
		selectors = DefaultPageSelectors()
	}

	title := ""
	if t, err := page.Title(ctx); err == nil {
		title = doccorpus.CanonicalTitle(t)
	}

	contentHTML := ""
	if el, err := firstVisible(ctx, page, selectors); err == nil {
		contentHTML, err = el.HTML(ctx)
		if err != nil {
			contentHTML = ""
		}
	}

	// No known container matched: let the boilerplate stripper have a
	// go at the raw HTML before giving up.
	if contentHTML == "" && s.Fallback != nil {
		rawHTML, err := page.HTML(ctx)
		if err == nil {
			if t, c, err := s.Fallback.ExtractMain(rawHTML); err == nil {
				contentHTML = c
				if title == "" {
					title = doccorpus.CanonicalTitle(t)
				}
			}
		}
	}

	if strings.TrimSpace(contentHTML) == "" {
		return nil, doccorpus.Errorf(doccorpus.ENOTFOUND, "no content container found")
	}

	markdown, err := s.Converter.Convert(contentHTML)
	if err != nil {
		return nil, err
	}

	content := doccorpus.NormalizeText(markdown)
	if content == "" {
		return nil, doccorpus.Errorf(doccorpus.ENOTFOUND, "page content is empty after normalization")
	}

	if title == "" {
		title = doccorpus.FallbackTitle(page.URL())
	}

	return []doccorpus.Section{{
		Title:     title,
		Content:   content,
		SourceURL: page.URL(),
		Kind:      doccorpus.KindFullPage,
	}}, nil
}
