// Package crawl orchestrates documentation crawls: URL discovery,
// rate-limited browser loading, cascading section extraction, and
// caching.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/doccorpus"
	"golang.org/x/sync/errgroup"
)

// Frontier configuration for recursive discovery.
const (
	// frontierExpectedURLs sizes the Bloom filter.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate
	// for deduplication.
	frontierFalsePositiveRate = 0.01

	// DefaultMaxPages bounds a crawl when no explicit limit is set.
	DefaultMaxPages = 1000

	// DefaultConcurrency is the worker count when none is configured.
	DefaultConcurrency = 4
)

// Crawler coordinates one documentation crawl end to end. All
// collaborators are injected; tests substitute mocks for each.
type Crawler struct {
	Sitemaps  doccorpus.SitemapService
	Loader    doccorpus.Loader
	Extractor doccorpus.Extractor
	Links     doccorpus.LinkDiscoverer
	Cache     doccorpus.Cache
	Limiter   doccorpus.DomainLimiter
	Logger    *slog.Logger

	// Concurrency is the number of concurrent page workers for
	// sitemap-driven crawls. Recursive discovery is sequential.
	Concurrency int

	// MaxPages bounds the number of pages processed.
	MaxPages int

	// RetryDelays overrides the load backoff schedule. Nil means
	// DefaultRetryDelays.
	RetryDelays []time.Duration
}

// Result summarizes a crawl.
type Result struct {
	// Pages is the number of URLs processed.
	Pages int

	// Sections holds every extracted section, including failed and
	// timeout markers, in URL processing order.
	Sections []doccorpus.Section

	// Failures counts pages whose extraction produced only
	// failed/timeout sections.
	Failures int

	// FromCache counts pages served from the cache without loading.
	FromCache int
}

// pageResult is one worker's output.
type pageResult struct {
	position  int
	url       string
	sections  []doccorpus.Section
	fromCache bool
}

// Run crawls the documentation site rooted at baseURL. Discovery tries
// the sitemap first; when it yields nothing, the crawler falls back to
// recursive link-following scoped to baseURL's host and path prefix.
//
// Individual page failures never abort the crawl: they surface as
// failed or timeout sections in the result.
func (c *Crawler) Run(ctx context.Context, baseURL string, filter *doccorpus.URLFilter) (*Result, error) {
	logger := c.logger()

	urls, err := c.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		logger.Warn("sitemap discovery failed, falling back to recursive discovery",
			"url", baseURL,
			"err", err,
		)
		urls = nil
	}

	if len(urls) == 0 {
		return c.recursiveCrawl(ctx, baseURL, filter)
	}

	urls = dedupe(urls)
	if max := c.maxPages(); len(urls) > max {
		logger.Warn("truncating discovered URLs to page limit",
			"discovered", len(urls),
			"limit", max,
		)
		urls = urls[:max]
	}
	logger.Info("starting crawl", "url", baseURL, "pages", len(urls))

	resultCh := make(chan pageResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- c.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	ordered := make([]pageResult, len(urls))
	for pr := range resultCh {
		ordered[pr.position] = pr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Pages: len(urls)}
	for _, pr := range ordered {
		result.Sections = append(result.Sections, pr.sections...)
		if pr.fromCache {
			result.FromCache++
		}
		if allFailed(pr.sections) {
			result.Failures++
		}
	}
	return result, nil
}

// processURL produces the sections for one URL: from cache when
// possible, otherwise by loading and extracting the page.
func (c *Crawler) processURL(ctx context.Context, position int, rawURL string) pageResult {
	pr := pageResult{position: position, url: rawURL}
	logger := c.logger()

	if c.Cache != nil {
		cached, err := c.Cache.Get(ctx, rawURL)
		if err == nil {
			logger.Debug("cache hit", "url", rawURL)
			pr.sections = cached.Sections
			pr.fromCache = true
			return pr
		}
		if doccorpus.ErrorCode(err) != doccorpus.ENOTFOUND {
			logger.Warn("cache read failed", "url", rawURL, "err", err)
		}
	}

	sections, links := c.loadAndExtract(ctx, rawURL)
	pr.sections = sections

	if c.Cache != nil && !allFailed(sections) {
		entry := &doccorpus.CachedPage{Sections: sections, Links: links}
		if err := c.Cache.Put(ctx, rawURL, entry); err != nil {
			logger.Warn("cache write failed", "url", rawURL, "err", err)
		}
	}

	return pr
}

// loadAndExtract loads the page with retry, runs the extraction cascade
// and collects the page's outgoing links so they can be cached with the
// sections. The rate-limiter gate is taken immediately before every
// navigation attempt, retries included. Load failures become
// failed/timeout marker sections.
func (c *Crawler) loadAndExtract(ctx context.Context, rawURL string) ([]doccorpus.Section, []doccorpus.DiscoveredLink) {
	logger := c.logger()

	load := func(ctx context.Context, u string) (doccorpus.Page, error) {
		if c.Limiter != nil {
			if host := hostOf(u); host != "" {
				if err := c.Limiter.Wait(ctx, host); err != nil {
					return nil, err
				}
			}
		}
		return c.Loader.Load(ctx, u)
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	page, err := LoadWithRetry(ctx, rawURL, load, func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}, delays)
	if err != nil {
		if doccorpus.ErrorCode(err) == doccorpus.ETIMEOUT {
			logger.Warn("page load timed out", "url", rawURL)
			return []doccorpus.Section{timeoutSection(rawURL)}, nil
		}
		logger.Warn("page load failed", "url", rawURL, "err", err)
		return []doccorpus.Section{failedSection(rawURL, err)}, nil
	}
	defer c.Loader.Release(page)

	return c.Extractor.Extract(ctx, page), c.discoverLinks(ctx, page)
}

// discoverLinks collects the page's outgoing links. Discovery failures
// only cost links, never sections.
func (c *Crawler) discoverLinks(ctx context.Context, page doccorpus.Page) []doccorpus.DiscoveredLink {
	if c.Links == nil {
		return nil
	}
	html, err := page.HTML(ctx)
	if err != nil || html == "" {
		return nil
	}
	links, err := c.Links.DiscoverLinks(html, page.URL())
	if err != nil {
		c.logger().Debug("link discovery failed", "url", page.URL(), "err", err)
		return nil
	}
	return links
}

// recursiveCrawl follows links from the start URL when no sitemap is
// available. Pages are processed sequentially so the frontier and the
// rate limiter stay simple; discovery crawls are bounded by MaxPages.
func (c *Crawler) recursiveCrawl(ctx context.Context, baseURL string, filter *doccorpus.URLFilter) (*Result, error) {
	logger := c.logger()

	source, err := url.Parse(baseURL)
	if err != nil {
		return nil, doccorpus.Errorf(doccorpus.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}
	pathPrefix := source.Path

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(doccorpus.DiscoveredLink{
		URL:      baseURL,
		Priority: doccorpus.PriorityNavigation,
	})

	logger.Info("starting recursive crawl", "url", baseURL)

	result := &Result{}
	for result.Pages < c.maxPages() {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Pages++

		sections, links, fromCache := c.processLink(ctx, link.URL)
		result.Sections = append(result.Sections, sections...)
		if fromCache {
			result.FromCache++
		}
		if allFailed(sections) {
			result.Failures++
			continue
		}

		for _, discovered := range links {
			du, err := url.Parse(discovered.URL)
			if err != nil {
				continue
			}
			if du.Host != source.Host || !strings.HasPrefix(du.Path, pathPrefix) {
				continue
			}
			if !filter.Match(discovered.URL) {
				continue
			}
			frontier.Push(discovered)
		}
	}

	return result, nil
}

// processLink is the recursive-crawl variant of processURL: it also
// returns the page's outgoing links so newly discovered ones can be
// queued. Cache hits return the links stored with the entry; a warm
// cache never narrows discovery.
func (c *Crawler) processLink(ctx context.Context, rawURL string) ([]doccorpus.Section, []doccorpus.DiscoveredLink, bool) {
	logger := c.logger()

	if c.Cache != nil {
		if cached, err := c.Cache.Get(ctx, rawURL); err == nil {
			logger.Debug("cache hit", "url", rawURL)
			return cached.Sections, cached.Links, true
		}
	}

	sections, links := c.loadAndExtract(ctx, rawURL)

	if c.Cache != nil && !allFailed(sections) {
		entry := &doccorpus.CachedPage{Sections: sections, Links: links}
		if err := c.Cache.Put(ctx, rawURL, entry); err != nil {
			logger.Warn("cache write failed", "url", rawURL, "err", err)
		}
	}

	return sections, links, false
}

func (c *Crawler) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return DefaultConcurrency
}

func (c *Crawler) maxPages() int {
	if c.MaxPages > 0 {
		return c.MaxPages
	}
	return DefaultMaxPages
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// failedSection marks a page that could not be loaded or extracted.
func failedSection(rawURL string, err error) doccorpus.Section {
	return doccorpus.Section{
		Title:     doccorpus.FallbackTitle(rawURL),
		Content:   fmt.Sprintf("Error loading page: %v", err),
		SourceURL: rawURL,
		Kind:      doccorpus.KindFailed,
	}
}

// timeoutSection marks a page that exceeded the page timeout.
func timeoutSection(rawURL string) doccorpus.Section {
	return doccorpus.Section{
		Title:     doccorpus.FallbackTitle(rawURL),
		Content:   "Page did not load within the configured timeout.",
		SourceURL: rawURL,
		Kind:      doccorpus.KindTimeout,
	}
}

// allFailed reports whether every section is a failure marker.
func allFailed(sections []doccorpus.Section) bool {
	if len(sections) == 0 {
		return true
	}
	for _, s := range sections {
		if !s.Kind.Failed() {
			return false
		}
	}
	return true
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// dedupe removes duplicate URLs preserving first-seen order.
func dedupe(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := urls[:0:0]
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
