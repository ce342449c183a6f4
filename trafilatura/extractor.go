// Package trafilatura provides boilerplate-stripping content extraction
// used as the last-resort source when no page container selector
// matches.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/doccorpus"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements doccorpus.ContentExtractor at compile time.
var _ doccorpus.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull the main content region out of
// raw page HTML, discarding navigation, sidebar and footer boilerplate.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMain returns the page title and the HTML of the main content
// region. The title may be empty when the page metadata carries none.
func (e *Extractor) ExtractMain(rawHTML string) (string, string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", "", doccorpus.Errorf(doccorpus.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", "", err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return "", "", err
		}
	}

	return result.Metadata.Title, contentHTML, nil
}

// renderNode converts an html.Node back to markup.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
