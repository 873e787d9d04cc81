package webone

import "context"

// Fetcher retrieves a page's raw HTML bytes from a URL. The bytes are kept
// raw (not transcoded) so downstream encoding detection sees the original
// payload.
type Fetcher interface {
	// Fetch downloads the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter throttles outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
