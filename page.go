package doccorpus

import "context"

// Element is a single DOM element on a loaded page.
type Element interface {
	// Text returns the element's visible text.
	Text(ctx context.Context) (string, error)

	// HTML returns the element's outer HTML.
	HTML(ctx context.Context) (string, error)

	// Visible reports whether the element is currently rendered.
	Visible(ctx context.Context) (bool, error)

	// Click scrolls the element into view and clicks it. Used to
	// reveal content regions behind navigation entries.
	Click(ctx context.Context) error

	// Elements returns descendant elements matching the CSS selector,
	// in DOM order.
	Elements(ctx context.Context, selector string) ([]Element, error)
}

// Page is a handle to a page that has already finished its initial load
// and dynamic-content settling. Extraction code never triggers
// navigation through it.
type Page interface {
	// URL returns the page's address.
	URL() string

	// Title returns the page's own title metadata.
	Title(ctx context.Context) (string, error)

	// HTML returns the rendered HTML of the whole document.
	HTML(ctx context.Context) (string, error)

	// Elements returns elements matching the CSS selector, in DOM
	// order.
	Elements(ctx context.Context, selector string) ([]Element, error)
}

// Loader navigates to a URL and returns a settled Page: loaded, with
// overlays dismissed and lazy content scrolled into existence.
// Implementations own the browser; a Loader is not safe to share
// between pages obtained from it concurrently unless documented
// otherwise.
type Loader interface {
	// Load navigates to the URL and waits for the page to settle.
	// Returns an ETIMEOUT error when the page exceeds the page
	// timeout.
	Load(ctx context.Context, url string) (Page, error)

	// Release disposes of a page obtained from Load.
	Release(page Page)

	// Close releases browser resources.
	Close() error
}
