package corpus_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/doccorpus"
	"github.com/fwojciec/doccorpus/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus() *doccorpus.Corpus {
	return &doccorpus.Corpus{
		ScrapedAt:   time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		GeneratedAt: time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC),
		Pages: []doccorpus.Section{
			{Title: "Getting Started", Content: "Install the thing.", SourceURL: "https://example.com/start", Kind: doccorpus.KindFullPage},
			{Title: "Loan Accounts", Content: "Accounts hold loans.", SourceURL: "https://example.com/loans", Kind: doccorpus.KindNavigation},
		},
		CommonPatterns: map[doccorpus.PatternCategory][]string{
			doccorpus.CategoryUIElements: {"menu in the top left"},
		},
	}
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	out := corpus.Markdown(testCorpus(), "Example Documentation")

	assert.True(t, strings.HasPrefix(out, "# Example Documentation\n\n"))
	assert.Contains(t, out, "*Generated on: 2025-03-10 09:05:00*")
	assert.Contains(t, out, "## Common Information Snippets")
	assert.Contains(t, out, "### Ui Elements")
	assert.Contains(t, out, "- menu in the top left")
	assert.Contains(t, out, "## Table of Contents")
	assert.Contains(t, out, "- [Getting Started](#getting-started)")
	assert.Contains(t, out, "- [Loan Accounts](#loan-accounts)")
	assert.Contains(t, out, "# Getting Started\n\nInstall the thing.\n\n---\n")
	assert.Contains(t, out, "# Loan Accounts\n\nAccounts hold loans.\n\n---\n")
}

func TestMarkdown_EmptyCorpus(t *testing.T) {
	t.Parallel()

	c := &doccorpus.Corpus{GeneratedAt: time.Now()}
	out := corpus.Markdown(c, "Example Documentation")

	assert.Contains(t, out, "*(No common information snippets were extracted based on defined patterns)*")
	assert.Contains(t, out, "*(No pages were successfully scraped)*")
	assert.Contains(t, out, "*(No page content to display)*")
}

func TestJSON(t *testing.T) {
	t.Parallel()

	data, err := corpus.JSON(testCorpus(), "https://example.com/docs")
	require.NoError(t, err)

	var doc struct {
		ScrapeTimestamp    string `json:"scrape_timestamp"`
		GeneratedTimestamp string `json:"generated_timestamp"`
		BaseURL            string `json:"base_url"`
		TotalPagesScraped  int    `json:"total_pages_scraped"`
		Pages              []struct {
			Title      string `json:"title"`
			Content    string `json:"content"`
			URL        string `json:"url"`
			SourceType string `json:"source_type"`
		} `json:"pages"`
		CommonSections map[string][]string `json:"common_sections"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "2025-03-10T09:00:00Z", doc.ScrapeTimestamp)
	assert.Equal(t, "https://example.com/docs", doc.BaseURL)
	assert.Equal(t, 2, doc.TotalPagesScraped)
	require.Len(t, doc.Pages, 2)
	assert.Equal(t, "Getting Started", doc.Pages[0].Title)
	assert.Equal(t, "full_page", doc.Pages[0].SourceType)
	assert.Equal(t, "https://example.com/loans", doc.Pages[1].URL)
	assert.Equal(t, []string{"menu in the top left"}, doc.CommonSections["ui_elements"])
}

func TestJSON_EmptyCorpus(t *testing.T) {
	t.Parallel()

	data, err := corpus.JSON(&doccorpus.Corpus{}, "https://example.com")
	require.NoError(t, err)

	assert.Contains(t, string(data), `"pages": []`)
	assert.Contains(t, string(data), `"total_pages_scraped": 0`)
}
