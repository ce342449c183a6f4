package doccorpus_test

import (
	"testing"

	"github.com/fwojciec/doccorpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagger(t *testing.T) {
	t.Parallel()

	t.Run("categorizes known warning text", func(t *testing.T) {
		t.Parallel()

		tagger := doccorpus.NewTagger(nil, nil)
		content := "Note that PATCH requests are not currently supported by this endpoint."

		got := tagger.Tag(content)

		require.Contains(t, got, doccorpus.CategoryConfigurationWarnings)
		assert.Equal(t,
			[]string{"PATCH requests are not currently supported"},
			got[doccorpus.CategoryConfigurationWarnings],
		)
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		t.Parallel()

		tagger := doccorpus.NewTagger(nil, nil)

		got := tagger.Tag("This FEATURE MUST BE ENABLED before use.")

		require.Contains(t, got, doccorpus.CategoryFeatureRequirements)
		assert.Equal(t, []string{"FEATURE MUST BE ENABLED"}, got[doccorpus.CategoryFeatureRequirements])
	})

	t.Run("deduplicates repeated matches", func(t *testing.T) {
		t.Parallel()

		tagger := doccorpus.NewTagger(nil, nil)
		content := "PATCH requests are not currently supported. " +
			"Again: PATCH requests are not currently supported."

		got := tagger.Tag(content)

		assert.Len(t, got[doccorpus.CategoryConfigurationWarnings], 1)
	})

	t.Run("collects matches across categories", func(t *testing.T) {
		t.Parallel()

		tagger := doccorpus.NewTagger(nil, nil)
		content := "Open the menu in the top left. Admin permission required."

		got := tagger.Tag(content)

		assert.Contains(t, got, doccorpus.CategoryUIElements)
		assert.Contains(t, got, doccorpus.CategoryPermissions)
	})

	t.Run("omits categories with no matches", func(t *testing.T) {
		t.Parallel()

		tagger := doccorpus.NewTagger(nil, nil)

		got := tagger.Tag("nothing interesting here")

		assert.Empty(t, got)
	})

	t.Run("skips malformed patterns without aborting the rest", func(t *testing.T) {
		t.Parallel()

		patterns := map[doccorpus.PatternCategory][]string{
			doccorpus.CategoryUIElements: {`([unclosed`, `navigation bar`},
		}
		tagger := doccorpus.NewTagger(patterns, nil)

		got := tagger.Tag("use the navigation bar on the left")

		require.Contains(t, got, doccorpus.CategoryUIElements)
		assert.Equal(t, []string{"navigation bar"}, got[doccorpus.CategoryUIElements])
	})

	t.Run("empty content yields no matches", func(t *testing.T) {
		t.Parallel()

		tagger := doccorpus.NewTagger(nil, nil)

		assert.Empty(t, tagger.Tag(""))
	})
}
