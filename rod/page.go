// Package rod implements browser-backed page loading on top of go-rod
// driven headless Chrome. Pages come back settled: loaded, overlays
// dismissed, lazy content scrolled into existence.
package rod

import (
	"context"

	"github.com/fwojciec/doccorpus"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Compile-time interface verification.
var (
	_ doccorpus.Page    = (*Page)(nil)
	_ doccorpus.Element = (*Element)(nil)
)

// Page adapts a rod page to the doccorpus.Page interface. Extraction
// code only reads through it; navigation stays with the Loader.
type Page struct {
	page    *rod.Page
	url     string
	release func()
}

// URL returns the page's address.
func (p *Page) URL() string {
	return p.url
}

// Title returns the page's own title metadata.
func (p *Page) Title(ctx context.Context) (string, error) {
	info, err := p.page.Context(ctx).Info()
	if err != nil {
		return "", err
	}
	return info.Title, nil
}

// HTML returns the rendered HTML of the whole document.
func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.page.Context(ctx).HTML()
}

// Elements returns elements matching the CSS selector, in DOM order.
func (p *Page) Elements(ctx context.Context, selector string) ([]doccorpus.Element, error) {
	els, err := p.page.Context(ctx).Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

// Element adapts a rod element to the doccorpus.Element interface.
type Element struct {
	el *rod.Element
}

// Text returns the element's visible text.
func (e *Element) Text(ctx context.Context) (string, error) {
	return e.el.Context(ctx).Text()
}

// HTML returns the element's outer HTML.
func (e *Element) HTML(ctx context.Context) (string, error) {
	return e.el.Context(ctx).HTML()
}

// Visible reports whether the element is currently rendered.
func (e *Element) Visible(ctx context.Context) (bool, error) {
	return e.el.Context(ctx).Visible()
}

// Click scrolls the element into view and clicks it.
func (e *Element) Click(ctx context.Context) error {
	el := e.el.Context(ctx)
	if err := el.ScrollIntoView(); err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

// Elements returns descendant elements matching the CSS selector, in
// DOM order.
func (e *Element) Elements(ctx context.Context, selector string) ([]doccorpus.Element, error) {
	els, err := e.el.Context(ctx).Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

func wrapElements(els rod.Elements) []doccorpus.Element {
	out := make([]doccorpus.Element, len(els))
	for i, el := range els {
		out[i] = &Element{el: el}
	}
	return out
}
