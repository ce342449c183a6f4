// Package mock provides function-field mock implementations of the
// doccorpus interfaces for use in tests.
package mock

import (
	"context"

	"github.com/fwojciec/doccorpus"
)

var _ doccorpus.Converter = (*Converter)(nil)

// Converter is a mock implementation of doccorpus.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ doccorpus.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of doccorpus.ContentExtractor.
type ContentExtractor struct {
	ExtractMainFn func(html string) (title, contentHTML string, err error)
}

func (e *ContentExtractor) ExtractMain(html string) (string, string, error) {
	return e.ExtractMainFn(html)
}

var _ doccorpus.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of doccorpus.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, page doccorpus.Page) []doccorpus.Section
}

func (e *Extractor) Extract(ctx context.Context, page doccorpus.Page) []doccorpus.Section {
	return e.ExtractFn(ctx, page)
}

var _ doccorpus.Cache = (*Cache)(nil)

// Cache is a mock implementation of doccorpus.Cache.
type Cache struct {
	GetFn func(ctx context.Context, url string) (*doccorpus.CachedPage, error)
	PutFn func(ctx context.Context, url string, page *doccorpus.CachedPage) error
}

func (c *Cache) Get(ctx context.Context, url string) (*doccorpus.CachedPage, error) {
	return c.GetFn(ctx, url)
}

func (c *Cache) Put(ctx context.Context, url string, page *doccorpus.CachedPage) error {
	return c.PutFn(ctx, url, page)
}

var _ doccorpus.Loader = (*Loader)(nil)

// Loader is a mock implementation of doccorpus.Loader.
type Loader struct {
	LoadFn    func(ctx context.Context, url string) (doccorpus.Page, error)
	ReleaseFn func(page doccorpus.Page)
	CloseFn   func() error
}

func (l *Loader) Load(ctx context.Context, url string) (doccorpus.Page, error) {
	return l.LoadFn(ctx, url)
}

func (l *Loader) Release(page doccorpus.Page) {
	if l.ReleaseFn != nil {
		l.ReleaseFn(page)
	}
}

func (l *Loader) Close() error {
	if l.CloseFn != nil {
		return l.CloseFn()
	}
	return nil
}

var _ doccorpus.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of doccorpus.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *doccorpus.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *doccorpus.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

var _ doccorpus.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of doccorpus.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverLinksFn func(html string, baseURL string) ([]doccorpus.DiscoveredLink, error)
}

func (d *LinkDiscoverer) DiscoverLinks(html string, baseURL string) ([]doccorpus.DiscoveredLink, error) {
	return d.DiscoverLinksFn(html, baseURL)
}

var _ doccorpus.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of doccorpus.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}

var _ doccorpus.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of doccorpus.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}

var _ doccorpus.UploadSink = (*UploadSink)(nil)

// UploadSink is a mock implementation of doccorpus.UploadSink.
type UploadSink struct {
	UploadFn func(ctx context.Context, localPath string) error
}

func (s *UploadSink) Upload(ctx context.Context, localPath string) error {
	return s.UploadFn(ctx, localPath)
}
