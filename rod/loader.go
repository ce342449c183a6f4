package rod

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/doccorpus"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Loader implements doccorpus.Loader at compile time.
var _ doccorpus.Loader = (*Loader)(nil)

// DefaultPageTimeout bounds one page's navigation and settling.
const DefaultPageTimeout = 30 * time.Second

// DefaultOverlaySelectors lists close buttons of overlays that commonly
// block documentation pages: modals, cookie banners, popups.
func DefaultOverlaySelectors() []string {
	return []string{
		"button.close",
		".modal-close",
		".popup-close",
		".cookie-banner button",
		"button[aria-label='Close']",
		".dismiss-button",
	}
}

// Loader navigates to URLs with a shared recycled browser and returns
// settled pages. Each Load opens a fresh browser page; Release closes
// it.
type Loader struct {
	manager          *BrowserManager
	pageTimeout      time.Duration
	overlaySelectors []string
	maxScrolls       int
	scrollPause      time.Duration
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithPageTimeout sets the per-page navigation timeout.
func WithPageTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		l.pageTimeout = d
	}
}

// WithOverlaySelectors replaces the default overlay close selectors.
func WithOverlaySelectors(selectors []string) LoaderOption {
	return func(l *Loader) {
		l.overlaySelectors = selectors
	}
}

// NewLoader creates a Loader on top of a BrowserManager.
func NewLoader(manager *BrowserManager, opts ...LoaderOption) *Loader {
	l := &Loader{
		manager:          manager,
		pageTimeout:      DefaultPageTimeout,
		overlaySelectors: DefaultOverlaySelectors(),
		maxScrolls:       15,
		scrollPause:      500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load navigates to the URL and waits for the page to settle: load
// event fired, blocking overlays dismissed, and the page scrolled to
// the bottom so lazy content exists in the DOM. Returns an ETIMEOUT
// error when the page exceeds the page timeout.
func (l *Loader) Load(ctx context.Context, url string) (doccorpus.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, release := l.manager.Acquire()
	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		release()
		return nil, err
	}
	page = page.Context(ctx)

	if err := l.settle(page, url); err != nil {
		_ = page.Close()
		release()
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, doccorpus.Errorf(doccorpus.ETIMEOUT, "page load timed out after %s: %s", l.pageTimeout, url)
		}
		return nil, err
	}

	return &Page{page: page, url: url, release: release}, nil
}

// settle performs the timeout-bounded part of loading.
func (l *Loader) settle(page *rod.Page, url string) error {
	tp := page.Timeout(l.pageTimeout)

	if err := tp.Navigate(url); err != nil {
		return err
	}
	if err := tp.WaitLoad(); err != nil {
		return err
	}

	l.dismissOverlays(tp)
	l.scrollToBottom(tp)

	tp.CancelTimeout()
	return nil
}

// dismissOverlays clicks any visible overlay close buttons. Best
// effort: a selector that fails never aborts the load.
func (l *Loader) dismissOverlays(page *rod.Page) {
	for _, selector := range l.overlaySelectors {
		els, err := page.Elements(selector)
		if err != nil {
			continue
		}
		for _, el := range els {
			visible, err := el.Visible()
			if err != nil || !visible {
				continue
			}
			_ = el.Click(proto.InputMouseButtonLeft, 1)
			time.Sleep(200 * time.Millisecond)
		}
	}
}

// scrollToBottom repeatedly scrolls down until the document height
// stops growing, bounded by maxScrolls, then returns to the top. This
// forces lazily rendered content into the DOM before extraction.
func (l *Loader) scrollToBottom(page *rod.Page) {
	lastHeight := pageHeight(page)
	for i := 0; i < l.maxScrolls; i++ {
		if _, err := page.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`); err != nil {
			return
		}
		time.Sleep(l.scrollPause)

		height := pageHeight(page)
		if height == lastHeight {
			break
		}
		lastHeight = height
	}
	_, _ = page.Eval(`() => window.scrollTo(0, 0)`)
}

func pageHeight(page *rod.Page) int {
	obj, err := page.Eval(`() => document.body.scrollHeight`)
	if err != nil {
		return 0
	}
	return obj.Value.Int()
}

// Release disposes of a page obtained from Load and returns its
// browser lease.
func (l *Loader) Release(page doccorpus.Page) {
	if p, ok := page.(*Page); ok {
		_ = p.page.Close()
		if p.release != nil {
			p.release()
		}
	}
}

// Close releases browser resources.
func (l *Loader) Close() error {
	return l.manager.Close()
}
