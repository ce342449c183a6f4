package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/doccorpus"
	"github.com/fwojciec/doccorpus/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WritesTimestampedPair(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := &fs.Writer{
		Dir:       dir,
		Prefix:    "example_docs",
		SiteTitle: "Example Documentation",
		BaseURL:   "https://example.com/docs",
		Now: func() time.Time {
			return time.Date(2026, 8, 26, 14, 24, 55, 0, time.UTC)
		},
	}

	c := &doccorpus.Corpus{
		GeneratedAt: time.Date(2026, 8, 26, 14, 24, 55, 0, time.UTC),
		Pages: []doccorpus.Section{
			{Title: "Intro", Content: "Welcome.", SourceURL: "https://example.com/docs/intro", Kind: doccorpus.KindFullPage},
		},
	}

	mdPath, jsonPath, err := w.Write(c)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "example_docs_20260826_142455.md"), mdPath)
	assert.Equal(t, filepath.Join(dir, "example_docs_20260826_142455.json"), jsonPath)

	md, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Example Documentation")
	assert.Contains(t, string(md), "# Intro")

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"base_url": "https://example.com/docs"`)
	assert.Contains(t, string(data), `"total_pages_scraped": 1`)
}

func TestWriter_CreatesOutputDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "out")
	w := &fs.Writer{Dir: dir, Prefix: "docs", SiteTitle: "Docs"}

	_, _, err := w.Write(&doccorpus.Corpus{GeneratedAt: time.Now()})
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}
