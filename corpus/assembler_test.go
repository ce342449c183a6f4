package corpus_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/doccorpus"
	"github.com/fwojciec/doccorpus/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestAssembler_SortsByTitleCaseInsensitive(t *testing.T) {
	t.Parallel()

	a := corpus.NewAssembler(nil, testLogger())
	c := a.Assemble([]doccorpus.Section{
		{Title: "zebra", Content: "z", SourceURL: "https://example.com/z", Kind: doccorpus.KindFullPage},
		{Title: "Apple", Content: "a", SourceURL: "https://example.com/a", Kind: doccorpus.KindFullPage},
		{Title: "mango", Content: "m", SourceURL: "https://example.com/m", Kind: doccorpus.KindFullPage},
	}, time.Now())

	require.Len(t, c.Pages, 3)
	assert.Equal(t, "Apple", c.Pages[0].Title)
	assert.Equal(t, "mango", c.Pages[1].Title)
	assert.Equal(t, "zebra", c.Pages[2].Title)
}

func TestAssembler_DeduplicatesFirstSeenWins(t *testing.T) {
	t.Parallel()

	a := corpus.NewAssembler(nil, testLogger())
	c := a.Assemble([]doccorpus.Section{
		{Title: "Loan Accounts", Content: "first", SourceURL: "https://example.com/1", Kind: doccorpus.KindFullPage},
		{Title: "loan accounts (2)", Content: "second", SourceURL: "https://example.com/2", Kind: doccorpus.KindFullPage},
		{Title: "LOAN ACCOUNTS", Content: "third", SourceURL: "https://example.com/3", Kind: doccorpus.KindFullPage},
	}, time.Now())

	require.Len(t, c.Pages, 1)
	assert.Equal(t, "first", c.Pages[0].Content)
	assert.Equal(t, 2, c.Duplicates)
}

func TestAssembler_DropsEmptyNonFailedSections(t *testing.T) {
	t.Parallel()

	a := corpus.NewAssembler(nil, testLogger())
	c := a.Assemble([]doccorpus.Section{
		{Title: "", Content: "content without title", SourceURL: "https://example.com/1", Kind: doccorpus.KindFullPage},
		{Title: "Title Without Content", Content: "", SourceURL: "https://example.com/2", Kind: doccorpus.KindHeader},
		{Title: "Kept", Content: "body", SourceURL: "https://example.com/3", Kind: doccorpus.KindFullPage},
	}, time.Now())

	require.Len(t, c.Pages, 1)
	assert.Equal(t, "Kept", c.Pages[0].Title)
	assert.Equal(t, 2, c.Dropped)
}

func TestAssembler_KeepsFailedAndTimeoutSections(t *testing.T) {
	t.Parallel()

	a := corpus.NewAssembler(nil, testLogger())
	c := a.Assemble([]doccorpus.Section{
		{Title: "Extraction Failed", Content: "Error extracting content: boom", SourceURL: "https://example.com/bad", Kind: doccorpus.KindFailed},
		{Title: "Page Load Timeout", Content: "Page did not load within the timeout.", SourceURL: "https://example.com/slow", Kind: doccorpus.KindTimeout},
	}, time.Now())

	require.Len(t, c.Pages, 2)
	assert.Equal(t, 0, c.Dropped)
}

func TestAssembler_SynthesizesTitleFromURL(t *testing.T) {
	t.Parallel()

	a := corpus.NewAssembler(nil, testLogger())
	c := a.Assemble([]doccorpus.Section{
		{Title: "  (3) ", Content: "body", SourceURL: "https://example.com/docs/loan-accounts", Kind: doccorpus.KindFullPage},
	}, time.Now())

	require.Len(t, c.Pages, 1)
	assert.Equal(t, "Loan Accounts", c.Pages[0].Title)
}

func TestAssembler_CollectsPatternsFromKeptContent(t *testing.T) {
	t.Parallel()

	tagger := doccorpus.NewTagger(nil, testLogger())
	a := corpus.NewAssembler(tagger, testLogger())
	c := a.Assemble([]doccorpus.Section{
		{
			Title:     "Config",
			Content:   "Note: PATCH requests are not currently supported.",
			SourceURL: "https://example.com/config",
			Kind:      doccorpus.KindFullPage,
		},
		{
			Title:     "Config Copy",
			Content:   "PATCH requests are not currently supported.",
			SourceURL: "https://example.com/config-copy",
			Kind:      doccorpus.KindFullPage,
		},
		{
			Title:     "Broken",
			Content:   "Error: PATCH requests are not currently supported.",
			SourceURL: "https://example.com/broken",
			Kind:      doccorpus.KindFailed,
		},
	}, time.Now())

	matches := c.CommonPatterns[doccorpus.CategoryConfigurationWarnings]
	require.Len(t, matches, 1)
	assert.Contains(t, matches[0], "PATCH requests are not currently supported")
}

func TestAssembler_DeterministicAcrossRuns(t *testing.T) {
	t.Parallel()

	sections := []doccorpus.Section{
		{Title: "Beta", Content: "b", SourceURL: "https://example.com/b", Kind: doccorpus.KindFullPage},
		{Title: "alpha", Content: "a", SourceURL: "https://example.com/a", Kind: doccorpus.KindFullPage},
		{Title: "Gamma", Content: "g", SourceURL: "https://example.com/g", Kind: doccorpus.KindFullPage},
	}

	a := corpus.NewAssembler(nil, testLogger())
	first := a.Assemble(sections, time.Now())
	second := a.Assemble(sections, time.Now())

	require.Equal(t, len(first.Pages), len(second.Pages))
	for i := range first.Pages {
		assert.Equal(t, first.Pages[i].Title, second.Pages[i].Title)
	}
}
