package goquery_test

import (
	"testing"

	"github.com/fwojciec/doccorpus"
	"github.com/fwojciec/doccorpus/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findLink(t *testing.T, links []doccorpus.DiscoveredLink, url string) doccorpus.DiscoveredLink {
	t.Helper()
	for _, l := range links {
		if l.URL == url {
			return l
		}
	}
	t.Fatalf("link %s not found in %v", url, links)
	return doccorpus.DiscoveredLink{}
}

func TestLinkDiscoverer_PrioritizesByRegion(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<nav><a href="/docs/intro">Intro</a></nav>
<main><p>See <a href="/docs/api">the API</a>.</p></main>
<footer><a href="/docs/legal">Legal</a></footer>
</body></html>`

	d := goquery.NewLinkDiscoverer()
	links, err := d.DiscoverLinks(html, "https://example.com/docs")
	require.NoError(t, err)
	require.Len(t, links, 3)

	assert.Equal(t, doccorpus.PriorityNavigation, findLink(t, links, "https://example.com/docs/intro").Priority)
	assert.Equal(t, doccorpus.PriorityContent, findLink(t, links, "https://example.com/docs/api").Priority)
	assert.Equal(t, doccorpus.PriorityFooter, findLink(t, links, "https://example.com/docs/legal").Priority)
}

func TestLinkDiscoverer_HighestPriorityWins(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<nav><a href="/docs/guide">Guide</a></nav>
<footer><a href="/docs/guide">Guide</a></footer>
</body></html>`

	d := goquery.NewLinkDiscoverer()
	links, err := d.DiscoverLinks(html, "https://example.com/")
	require.NoError(t, err)

	require.Len(t, links, 1)
	assert.Equal(t, doccorpus.PriorityNavigation, links[0].Priority)
	assert.Equal(t, "nav", links[0].Source)
}

func TestLinkDiscoverer_ResolvesRelativeHrefs(t *testing.T) {
	t.Parallel()

	html := `<html><body><main><a href="guide/setup">Setup</a></main></body></html>`

	d := goquery.NewLinkDiscoverer()
	links, err := d.DiscoverLinks(html, "https://example.com/docs/")
	require.NoError(t, err)

	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/docs/guide/setup", links[0].URL)
}

func TestLinkDiscoverer_DropsExternalAndNonHTTP(t *testing.T) {
	t.Parallel()

	html := `<html><body><main>
<a href="https://other.com/docs">External</a>
<a href="mailto:docs@example.com">Mail</a>
<a href="javascript:void(0)">JS</a>
<a href="/docs/kept">Kept</a>
</main></body></html>`

	d := goquery.NewLinkDiscoverer()
	links, err := d.DiscoverLinks(html, "https://example.com/docs")
	require.NoError(t, err)

	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/docs/kept", links[0].URL)
}

func TestLinkDiscoverer_SkipsAssetFiles(t *testing.T) {
	t.Parallel()

	html := `<html><body><main>
<a href="/docs/manual.pdf">PDF</a>
<a href="/assets/logo.png">Logo</a>
<a href="/docs/page">Page</a>
</main></body></html>`

	d := goquery.NewLinkDiscoverer()
	links, err := d.DiscoverLinks(html, "https://example.com/")
	require.NoError(t, err)

	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/docs/page", links[0].URL)
}

func TestLinkDiscoverer_StripsFragments(t *testing.T) {
	t.Parallel()

	html := `<html><body><main>
<a href="/docs/page#intro">Intro</a>
<a href="/docs/page#usage">Usage</a>
</main></body></html>`

	d := goquery.NewLinkDiscoverer()
	links, err := d.DiscoverLinks(html, "https://example.com/")
	require.NoError(t, err)

	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/docs/page", links[0].URL)
}

func TestLinkDiscoverer_FallbackForBareAnchors(t *testing.T) {
	t.Parallel()

	html := `<html><body><div class="custom-layout">
<a href="/docs/orphan">Orphan</a>
</div></body></html>`

	d := goquery.NewLinkDiscoverer()
	links, err := d.DiscoverLinks(html, "https://example.com/")
	require.NoError(t, err)

	require.Len(t, links, 1)
	assert.Equal(t, doccorpus.PriorityFallback, links[0].Priority)
	assert.Equal(t, "page", links[0].Source)
}

func TestLinkDiscoverer_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	d := goquery.NewLinkDiscoverer()
	_, err := d.DiscoverLinks("<html></html>", "://not-a-url")

	require.Error(t, err)
	assert.Equal(t, doccorpus.EINVALID, doccorpus.ErrorCode(err))
}
