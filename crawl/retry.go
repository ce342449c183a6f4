package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/doccorpus"
)

// LoadFunc is the signature for a page load attempt.
type LoadFunc func(ctx context.Context, url string) (doccorpus.Page, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for load retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// LoadWithRetry attempts to load a URL with exponential backoff.
// It makes one attempt per delay plus the initial one, waiting the
// corresponding delay between attempts. The logger, if provided, is
// called once per retry.
func LoadWithRetry(ctx context.Context, url string, load LoadFunc, logger LogFunc, delays []time.Duration) (doccorpus.Page, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		page, err := load(ctx, url)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
