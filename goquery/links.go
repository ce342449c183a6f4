// Package goquery provides HTML link discovery backed by the goquery
// CSS selector engine.
package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/doccorpus"
)

var _ doccorpus.LinkDiscoverer = (*LinkDiscoverer)(nil)

// Extensions that never lead to documentation pages.
var skippedExtensions = map[string]bool{
	".pdf": true, ".zip": true, ".tar": true, ".gz": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".ico": true, ".css": true, ".js": true,
}

// LinkDiscoverer extracts same-host documentation links from rendered
// HTML, prioritized by where on the page they appear.
type LinkDiscoverer struct{}

// NewLinkDiscoverer creates a new LinkDiscoverer.
func NewLinkDiscoverer() *LinkDiscoverer {
	return &LinkDiscoverer{}
}

// DiscoverLinks parses HTML and returns prioritized links. Relative
// hrefs are resolved against baseURL; off-host links, non-HTTP schemes
// and asset files are dropped, and fragments are stripped so in-page
// anchors collapse to their page. When the same URL appears in several
// regions the highest-priority occurrence wins.
func (d *LinkDiscoverer) DiscoverLinks(html string, baseURL string) ([]doccorpus.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, doccorpus.Errorf(doccorpus.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, doccorpus.Errorf(doccorpus.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]doccorpus.DiscoveredLink)
	var order []string

	collect := func(selector string, priority doccorpus.LinkPriority, source string) {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" {
				return
			}

			resolved := resolve(base, href)
			if resolved == "" {
				return
			}

			existing, ok := seen[resolved]
			if ok && existing.Priority >= priority {
				return
			}
			if !ok {
				order = append(order, resolved)
			}
			seen[resolved] = doccorpus.DiscoveredLink{
				URL:      resolved,
				Priority: priority,
				Text:     strings.TrimSpace(sel.Text()),
				Source:   source,
			}
		})
	}

	// Highest priority first so the first occurrence also sets the
	// final priority for most pages.
	collect("nav a[href], aside a[href], .sidebar a[href]", doccorpus.PriorityNavigation, "nav")
	collect("main a[href], article a[href]", doccorpus.PriorityContent, "content")
	collect("footer a[href]", doccorpus.PriorityFooter, "footer")
	collect("a[href]", doccorpus.PriorityFallback, "page")

	links := make([]doccorpus.DiscoveredLink, 0, len(order))
	for _, u := range order {
		links = append(links, seen[u])
	}
	return links, nil
}

// resolve turns an href into an absolute, fragment-free, same-host URL,
// or "" when the link should be skipped.
func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	if resolved.Host != base.Host {
		return ""
	}
	if skippedExtensions[strings.ToLower(path.Ext(resolved.Path))] {
		return ""
	}

	resolved.Fragment = ""
	return resolved.String()
}
