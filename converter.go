package doccorpus

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown, preserving link
	// text and block/heading boundaries, with no forced line-wrap
	// width.
	Convert(html string) (string, error)
}
