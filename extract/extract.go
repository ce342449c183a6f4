// Package extract implements section extraction from loaded
// documentation pages as an ordered cascade of strategies:
// navigation-based, header-based, then full-page fallback.
package extract

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/doccorpus"
)

// Strategy is one extraction technique. Strategies are tried in
// sequence by the Cascade until one produces a usable result.
type Strategy interface {
	// Name returns the strategy's identifier for diagnostics.
	Name() string

	// Extract produces sections from a loaded page. Returning an
	// error (or an unusable result) hands control to the next
	// strategy in the cascade.
	Extract(ctx context.Context, page doccorpus.Page) ([]doccorpus.Section, error)
}

// Ensure Cascade implements doccorpus.Extractor at compile time.
var _ doccorpus.Extractor = (*Cascade)(nil)

// Cascade runs strategies in a fixed order with a uniform success
// predicate: a stage succeeds when it yields at least one section and
// the result is not a single failed section.
//
// Extract never returns an error; when every strategy fails it emits a
// single KindFailed section so the failure stays visible downstream.
type Cascade struct {
	strategies []Strategy
	logger     *slog.Logger
}

// NewCascade creates the standard cascade: navigation, headers, full
// page. The fallback content extractor may be nil.
func NewCascade(conv doccorpus.Converter, fallback doccorpus.ContentExtractor, logger *slog.Logger) *Cascade {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cascade{
		strategies: []Strategy{
			&Navigation{Converter: conv, Logger: logger},
			&Headers{Converter: conv},
			&FullPage{Converter: conv, Fallback: fallback},
		},
		logger: logger,
	}
}

// NewCascadeWith creates a cascade over an explicit strategy list, in
// order. Site-specific callers inject their own strategies here instead
// of patching the generic ones.
func NewCascadeWith(logger *slog.Logger, strategies ...Strategy) *Cascade {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cascade{strategies: strategies, logger: logger}
}

// Extract runs the cascade over the page.
func (c *Cascade) Extract(ctx context.Context, page doccorpus.Page) []doccorpus.Section {
	for _, strategy := range c.strategies {
		sections, err := strategy.Extract(ctx, page)
		if err != nil {
			c.logger.Debug("extraction strategy failed",
				"strategy", strategy.Name(),
				"url", page.URL(),
				"err", err,
			)
			continue
		}
		if !usable(sections) {
			c.logger.Debug("extraction strategy yielded nothing usable",
				"strategy", strategy.Name(),
				"url", page.URL(),
			)
			continue
		}
		return sections
	}

	c.logger.Warn("all extraction strategies failed", "url", page.URL())
	return []doccorpus.Section{{
		Title:     "Extraction Failed",
		Content:   "Failed to extract meaningful content after trying multiple strategies.",
		SourceURL: page.URL(),
		Kind:      doccorpus.KindFailed,
	}}
}

// usable is the cascade's success predicate: non-empty and not a lone
// failed section.
func usable(sections []doccorpus.Section) bool {
	if len(sections) == 0 {
		return false
	}
	if len(sections) == 1 && sections[0].Kind.Failed() {
		return false
	}
	return true
}

// firstVisible returns the first element matching any of the selectors,
// in selector priority order, that is visible and has non-empty text.
// Returns ENOTFOUND when the selector list is exhausted without a
// match.
func firstVisible(ctx context.Context, page doccorpus.Page, selectors []string) (doccorpus.Element, error) {
	for _, selector := range selectors {
		elements, err := page.Elements(ctx, selector)
		if err != nil {
			continue
		}
		for _, el := range elements {
			visible, err := el.Visible(ctx)
			if err != nil || !visible {
				continue
			}
			text, err := el.Text(ctx)
			if err != nil || strings.TrimSpace(text) == "" {
				continue
			}
			return el, nil
		}
	}
	return nil, doccorpus.Errorf(doccorpus.ENOTFOUND, "no visible element matched selectors")
}
