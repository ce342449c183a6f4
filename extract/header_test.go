package extract_test

import (
	"context"
	"testing"

	"github.com/fwojciec/doccorpus"
	"github.com/fwojciec/doccorpus/extract"
	"github.com/fwojciec/doccorpus/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthroughConverter returns HTML unchanged so tests can assert on
// region ownership without depending on a Markdown library.
func passthroughConverter() *mock.Converter {
	return &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			return html, nil
		},
	}
}

func htmlPage(url, html string) *mock.Page {
	return &mock.Page{
		URLFn:   func() string { return url },
		TitleFn: func(ctx context.Context) (string, error) { return "", nil },
		HTMLFn:  func(ctx context.Context) (string, error) { return html, nil },
		ElementsFn: func(ctx context.Context, selector string) ([]doccorpus.Element, error) {
			return nil, nil
		},
	}
}

func TestHeaders(t *testing.T) {
	t.Parallel()

	t.Run("one section per heading in document order", func(t *testing.T) {
		t.Parallel()

		page := htmlPage("https://example.com/docs", `<html><body>
			<h2>Alpha</h2><p>alpha body</p>
			<h2>Beta</h2><p>beta body</p>
			<h2>Gamma</h2><p>gamma body</p>
		</body></html>`)

		strategy := &extract.Headers{Converter: passthroughConverter()}
		sections, err := strategy.Extract(context.Background(), page)

		require.NoError(t, err)
		require.Len(t, sections, 3)
		assert.Equal(t, "Alpha", sections[0].Title)
		assert.Equal(t, "Beta", sections[1].Title)
		assert.Equal(t, "Gamma", sections[2].Title)
		for _, s := range sections {
			assert.Equal(t, doccorpus.KindHeader, s.Kind)
		}
	})

	t.Run("section content excludes the next heading's region", func(t *testing.T) {
		t.Parallel()

		page := htmlPage("https://example.com/docs", `<html><body>
			<h2>First</h2><p>first body</p>
			<h2>Second</h2><p>second body</p>
		</body></html>`)

		strategy := &extract.Headers{Converter: passthroughConverter()}
		sections, err := strategy.Extract(context.Background(), page)

		require.NoError(t, err)
		require.Len(t, sections, 2)
		assert.Contains(t, sections[0].Content, "first body")
		assert.NotContains(t, sections[0].Content, "second body")
		assert.NotContains(t, sections[0].Content, "Second")
		assert.Contains(t, sections[1].Content, "second body")
	})

	t.Run("stops before a sibling containing the next heading", func(t *testing.T) {
		t.Parallel()

		page := htmlPage("https://example.com/docs", `<html><body>
			<h1>Outer</h1><p>outer body</p>
			<div><h2>Nested</h2><p>nested body</p></div>
		</body></html>`)

		strategy := &extract.Headers{Converter: passthroughConverter()}
		sections, err := strategy.Extract(context.Background(), page)

		require.NoError(t, err)
		require.Len(t, sections, 2)
		assert.NotContains(t, sections[0].Content, "nested body")
		assert.Contains(t, sections[1].Content, "nested body")
	})

	t.Run("skips headings with empty text", func(t *testing.T) {
		t.Parallel()

		page := htmlPage("https://example.com/docs", `<html><body>
			<h2>   </h2><p>orphan</p>
			<h2>Kept</h2><p>kept body</p>
		</body></html>`)

		strategy := &extract.Headers{Converter: passthroughConverter()}
		sections, err := strategy.Extract(context.Background(), page)

		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.Equal(t, "Kept", sections[0].Title)
	})

	t.Run("falls through when no headings exist", func(t *testing.T) {
		t.Parallel()

		page := htmlPage("https://example.com/docs", `<html><body><p>no headings</p></body></html>`)

		strategy := &extract.Headers{Converter: passthroughConverter()}
		_, err := strategy.Extract(context.Background(), page)

		assert.Equal(t, doccorpus.ENOTFOUND, doccorpus.ErrorCode(err))
	})

	t.Run("appends slug fragment to the source URL", func(t *testing.T) {
		t.Parallel()

		page := htmlPage("https://example.com/docs", `<html><body>
			<h2>Getting Started</h2><p>body</p>
			<h2>More</h2><p>more</p>
		</body></html>`)

		strategy := &extract.Headers{Converter: passthroughConverter()}
		sections, err := strategy.Extract(context.Background(), page)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/docs#getting-started", sections[0].SourceURL)
	})

	t.Run("conversion error yields a failed section for that heading only", func(t *testing.T) {
		t.Parallel()

		calls := 0
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				calls++
				if calls == 1 {
					return "", doccorpus.Errorf(doccorpus.EINTERNAL, "boom")
				}
				return html, nil
			},
		}
		page := htmlPage("https://example.com/docs", `<html><body>
			<h2>Broken</h2><p>x</p>
			<h2>Fine</h2><p>y</p>
		</body></html>`)

		strategy := &extract.Headers{Converter: conv}
		sections, err := strategy.Extract(context.Background(), page)

		require.NoError(t, err)
		require.Len(t, sections, 2)
		assert.Equal(t, doccorpus.KindFailed, sections[0].Kind)
		assert.Contains(t, sections[0].Content, "Error extracting content")
		assert.Equal(t, doccorpus.KindHeader, sections[1].Kind)
	})
}
