package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/doccorpus"
	"golang.org/x/net/html"
)

var _ Strategy = (*Headers)(nil)

// Headers segments the settled page HTML by h1-h3 headings. Each
// section owns its heading plus the following siblings up to (but
// excluding) the next h1-h3 heading, or any node that contains it.
type Headers struct {
	Converter doccorpus.Converter
}

// Name returns the strategy's identifier.
func (s *Headers) Name() string { return "headers" }

// Extract parses the page HTML and emits one section per non-empty
// heading, in document order.
func (s *Headers) Extract(ctx context.Context, page doccorpus.Page) ([]doccorpus.Section, error) {
	rawHTML, err := page.HTML(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, doccorpus.Errorf(doccorpus.EINVALID, "parsing page HTML: %v", err)
	}

	headings := doc.Find("h1, h2, h3").Nodes
	if len(headings) == 0 {
		return nil, doccorpus.Errorf(doccorpus.ENOTFOUND, "no h1-h3 headings found")
	}

	var sections []doccorpus.Section
	for i, heading := range headings {
		title := strings.TrimSpace(nodeText(heading))
		if title == "" {
			continue
		}

		var next *html.Node
		if i+1 < len(headings) {
			next = headings[i+1]
		}

		regionHTML, err := renderRegion(heading, next)
		if err != nil {
			sections = append(sections, doccorpus.Section{
				Title:     title,
				Content:   fmt.Sprintf("Error extracting content: %v", err),
				SourceURL: page.URL(),
				Kind:      doccorpus.KindFailed,
			})
			continue
		}

		markdown, err := s.Converter.Convert(regionHTML)
		if err != nil {
			sections = append(sections, doccorpus.Section{
				Title:     title,
				Content:   fmt.Sprintf("Error extracting content: %v", err),
				SourceURL: page.URL(),
				Kind:      doccorpus.KindFailed,
			})
			continue
		}

		sections = append(sections, doccorpus.Section{
			Title:     title,
			Content:   doccorpus.NormalizeText(markdown),
			SourceURL: page.URL() + "#" + doccorpus.Slug(title),
			Kind:      doccorpus.KindHeader,
		})
	}

	if len(sections) == 0 {
		return nil, doccorpus.Errorf(doccorpus.ENOTFOUND, "all headings were empty")
	}
	return sections, nil
}

// renderRegion renders the heading and its following siblings as outer
// HTML, stopping before the next heading or before any sibling whose
// subtree contains it.
func renderRegion(heading, next *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, heading); err != nil {
		return "", err
	}

	for node := heading.NextSibling; node != nil; node = node.NextSibling {
		if next != nil && (node == next || containsNode(node, next)) {
			break
		}
		if err := html.Render(&buf, node); err != nil {
			return "", err
		}
	}

	return buf.String(), nil
}

// containsNode reports whether target is a descendant of root.
func containsNode(root, target *html.Node) bool {
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if child == target || containsNode(child, target) {
			return true
		}
	}
	return false
}

// nodeText concatenates the text nodes under n.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}
