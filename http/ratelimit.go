package http

import (
	"context"
	"net/url"
	"sync"

	"github.com/webonehq/webone"
	"golang.org/x/time/rate"
)

// Ensure DomainLimiter implements webone.DomainLimiter at compile time.
var _ webone.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter, so requests to different domains
// proceed concurrently while requests within a domain are throttled.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter with the specified requests per
// second limit. Each domain gets a burst of 1 (no bursting allowed).
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
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

// Ensure RateLimitedFetcher implements webone.Fetcher at compile time.
var _ webone.Fetcher = (*RateLimitedFetcher)(nil)

// RateLimitedFetcher decorates a Fetcher with per-domain rate limits.
type RateLimitedFetcher struct {
	next    webone.Fetcher
	limiter webone.DomainLimiter
}

// NewRateLimitedFetcher creates a RateLimitedFetcher.
func NewRateLimitedFetcher(next webone.Fetcher, limiter webone.DomainLimiter) *RateLimitedFetcher {
	return &RateLimitedFetcher{next: next, limiter: limiter}
}

// Fetch waits for the URL's domain limiter before delegating.
func (f *RateLimitedFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, webone.Errorf(webone.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
		return nil, err
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *RateLimitedFetcher) Close() error {
	return f.next.Close()
}
