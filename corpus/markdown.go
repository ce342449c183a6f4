package corpus

import (
	"fmt"
	"strings"

	"github.com/fwojciec/doccorpus"
)

// Markdown renders a corpus as a single Markdown document: a title
// block, the common snippet buckets, a table of contents with slug
// anchors, and one `# Title` block per page separated by rules.
func Markdown(c *doccorpus.Corpus, siteTitle string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", siteTitle)
	fmt.Fprintf(&b, "*Generated on: %s*\n\n", c.GeneratedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("## Common Information Snippets\n\n")
	found := false
	for _, category := range doccorpus.PatternCategories() {
		items := c.CommonPatterns[category]
		if len(items) == 0 {
			continue
		}
		found = true
		fmt.Fprintf(&b, "### %s\n\n", categoryHeading(category))
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		b.WriteString("\n")
	}
	if !found {
		b.WriteString("*(No common information snippets were extracted based on defined patterns)*\n\n")
	}

	b.WriteString("## Table of Contents\n\n")
	if len(c.Pages) > 0 {
		for _, page := range c.Pages {
			fmt.Fprintf(&b, "- [%s](#%s)\n", page.Title, doccorpus.Slug(page.Title))
		}
	} else {
		b.WriteString("*(No pages were successfully scraped)*\n")
	}
	b.WriteString("\n")

	b.WriteString("\n---\n\n")
	if len(c.Pages) > 0 {
		for _, page := range c.Pages {
			fmt.Fprintf(&b, "# %s\n\n", page.Title)
			fmt.Fprintf(&b, "%s\n\n", page.Content)
			b.WriteString("---\n\n")
		}
	} else {
		b.WriteString("*(No page content to display)*\n\n")
	}

	return b.String()
}

// categoryHeading turns "configuration_warnings" into
// "Configuration Warnings".
func categoryHeading(category doccorpus.PatternCategory) string {
	words := strings.Split(string(category), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
