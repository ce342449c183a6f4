package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/doccorpus"
	"golang.org/x/time/rate"
)

var _ doccorpus.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter rate-limits page navigations per domain using token
// buckets. Requests to different domains never block each other.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter with the given requests per
// second. Each domain gets its own limiter with a burst of 1, so
// navigations within a domain are evenly spaced.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain, or
// the context is canceled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
