package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// browserGeneration couples one launched browser with the leases of
// pages still open on it. A retired generation is closed only once the
// last lease has been released, so pages opened before a recycle keep
// working until their callers are done with them.
type browserGeneration struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	leases   sync.WaitGroup
}

// close shuts down the generation's browser and launcher.
func (g *browserGeneration) close() error {
	err := g.browser.Close()
	g.launcher.Kill()
	return err
}

// launchGeneration starts a new browser instance with stability flags.
func launchGeneration() (*browserGeneration, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &browserGeneration{browser: browser, launcher: lnchr}, nil
}

// BrowserManager manages browser lifecycle with automatic recycling.
// Chrome accumulates memory under sustained load and never returns to
// baseline even with proper page cleanup, so the browser is replaced
// after a fixed number of pages. Pages still open on a replaced
// browser stay usable: the old browser is drained before it is closed.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	current  *browserGeneration
	served   int64
	maxPages int64
	closed   bool
	retiring sync.WaitGroup
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the number of pages before the browser is recycled.
// Defaults to DefaultMaxPages.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// NewBrowserManager launches a headless Chrome browser. Close must be
// called when the manager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(bm)
	}

	gen, err := launchGeneration()
	if err != nil {
		return nil, err
	}
	bm.current = gen

	return bm, nil
}

// Acquire leases the current browser for one page, recycling it first
// when the page count has reached maxPages. Callers must call the
// returned release func once the page is closed; until then the leased
// browser is kept alive even across a recycle.
func (bm *BrowserManager) Acquire() (*rod.Browser, func()) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.served >= bm.maxPages {
		bm.recycle()
	}

	gen := bm.current
	gen.leases.Add(1)
	bm.served++

	var once sync.Once
	release := func() {
		once.Do(gen.leases.Done)
	}
	return gen.browser, release
}

// recycle launches a replacement browser and retires the current one.
// The retired browser is closed in the background once every page
// leased from it has been released. When the new launch fails the
// current browser keeps serving.
// Must be called with mu held.
func (bm *BrowserManager) recycle() {
	next, err := launchGeneration()
	if err != nil {
		return
	}

	old := bm.current
	bm.current = next
	bm.served = 0

	bm.retiring.Add(1)
	go func() {
		defer bm.retiring.Done()
		old.leases.Wait()
		_ = old.close()
	}()
}

// Close waits for retired browsers to drain, then shuts down the
// current one. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	if bm.closed {
		bm.mu.Unlock()
		return nil
	}
	bm.closed = true
	cur := bm.current
	bm.current = nil
	bm.mu.Unlock()

	bm.retiring.Wait()
	if cur == nil {
		return nil
	}
	return cur.close()
}

// LauncherPID returns the process ID of the current browser launcher.
// Used by tests to verify cleanup.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.current == nil {
		return 0
	}
	return bm.current.launcher.PID()
}
