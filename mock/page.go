package mock

import (
	"context"

	"github.com/fwojciec/doccorpus"
)

var _ doccorpus.Page = (*Page)(nil)

// Page is a mock implementation of doccorpus.Page.
type Page struct {
	URLFn      func() string
	TitleFn    func(ctx context.Context) (string, error)
	HTMLFn     func(ctx context.Context) (string, error)
	ElementsFn func(ctx context.Context, selector string) ([]doccorpus.Element, error)
}

func (p *Page) URL() string {
	return p.URLFn()
}

func (p *Page) Title(ctx context.Context) (string, error) {
	return p.TitleFn(ctx)
}

func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.HTMLFn(ctx)
}

func (p *Page) Elements(ctx context.Context, selector string) ([]doccorpus.Element, error) {
	return p.ElementsFn(ctx, selector)
}

var _ doccorpus.Element = (*Element)(nil)

// Element is a mock implementation of doccorpus.Element.
type Element struct {
	TextFn     func(ctx context.Context) (string, error)
	HTMLFn     func(ctx context.Context) (string, error)
	VisibleFn  func(ctx context.Context) (bool, error)
	ClickFn    func(ctx context.Context) error
	ElementsFn func(ctx context.Context, selector string) ([]doccorpus.Element, error)
}

func (e *Element) Text(ctx context.Context) (string, error) {
	return e.TextFn(ctx)
}

func (e *Element) HTML(ctx context.Context) (string, error) {
	return e.HTMLFn(ctx)
}

func (e *Element) Visible(ctx context.Context) (bool, error) {
	return e.VisibleFn(ctx)
}

func (e *Element) Click(ctx context.Context) error {
	return e.ClickFn(ctx)
}

func (e *Element) Elements(ctx context.Context, selector string) ([]doccorpus.Element, error) {
	return e.ElementsFn(ctx, selector)
}
