package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"time"

	"github.com/fwojciec/doccorpus"
	"github.com/fwojciec/doccorpus/corpus"
	"github.com/fwojciec/doccorpus/crawl"
	"github.com/fwojciec/doccorpus/fs"
)

// Scraper runs one scrape end to end: crawl, assemble, write, count
// tokens, and optionally publish the output files.
type Scraper struct {
	Crawler   *crawl.Crawler
	Assembler *corpus.Assembler
	Counter   doccorpus.TokenCounter
	Sink      doccorpus.UploadSink
	Logger    *slog.Logger

	OutputDir string
	Prefix    string
	SiteTitle string
}

// Scrape crawls the site at baseURL and returns the paths of the files
// it wrote.
func (s *Scraper) Scrape(ctx context.Context, baseURL string, filter *doccorpus.URLFilter) ([]string, error) {
	startedAt := time.Now()

	result, err := s.Crawler.Run(ctx, baseURL, filter)
	if err != nil {
		return nil, err
	}

	c := s.Assembler.Assemble(result.Sections, startedAt)

	writer := &fs.Writer{
		Dir:       s.OutputDir,
		Prefix:    s.Prefix,
		SiteTitle: s.SiteTitle,
		BaseURL:   baseURL,
	}
	mdPath, jsonPath, err := writer.Write(c)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("scrape finished",
		"url", baseURL,
		"pages", result.Pages,
		"sections", len(c.Pages),
		"duplicates", c.Duplicates,
		"failures", result.Failures,
		"from_cache", result.FromCache,
		"duration", time.Since(startedAt),
	)

	if s.Counter != nil {
		if tokens, err := s.countFileTokens(ctx, mdPath); err != nil {
			s.Logger.Warn("token count failed", "path", mdPath, "err", err)
		} else {
			s.Logger.Info("corpus size", "path", mdPath, "tokens", tokens)
		}
	}

	paths := []string{mdPath, jsonPath}
	if s.Sink != nil {
		for _, path := range paths {
			if err := s.Sink.Upload(ctx, path); err != nil {
				return nil, fmt.Errorf("upload %s: %w", path, err)
			}
		}
	}

	return paths, nil
}

func (s *Scraper) countFileTokens(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return s.Counter.CountTokens(ctx, string(data))
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	filter, err := buildFilter(c.Filter, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	scraper := deps.Scraper
	if c.Output != "" {
		scraper.OutputDir = c.Output
	}
	if c.Prefix != "" {
		scraper.Prefix = c.Prefix
	}
	if c.MaxPages > 0 {
		scraper.Crawler.MaxPages = c.MaxPages
	}

	paths, err := scraper.Scrape(deps.Ctx, c.URL, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doccorpus.ErrorMessage(err))
		return err
	}

	for _, path := range paths {
		fmt.Fprintln(deps.Stdout, path)
	}
	return nil
}

// buildFilter compiles include/exclude patterns into a URLFilter.
// Returns nil when no patterns are given.
func buildFilter(include, exclude []string) (*doccorpus.URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}

	filter := &doccorpus.URLFilter{}
	for _, pattern := range include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		filter.Exclude = append(filter.Exclude, re)
	}
	return filter, nil
}
