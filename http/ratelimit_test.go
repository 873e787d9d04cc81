package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wohttp "github.com/webonehq/webone/http"
	"github.com/webonehq/webone/mock"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request proceeds immediately", func(t *testing.T) {
		t.Parallel()

		limiter := wohttp.NewDomainLimiter(1.0)

		begin := time.Now()
		err := limiter.Wait(context.Background(), "example.com")

		require.NoError(t, err)
		assert.Less(t, time.Since(begin), 100*time.Millisecond)
	})

	t.Run("different domains do not block each other", func(t *testing.T) {
		t.Parallel()

		limiter := wohttp.NewDomainLimiter(1.0)
		require.NoError(t, limiter.Wait(context.Background(), "a.com"))

		begin := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "b.com"))
		assert.Less(t, time.Since(begin), 100*time.Millisecond)
	})

	t.Run("second request within a domain is throttled", func(t *testing.T) {
		t.Parallel()

		limiter := wohttp.NewDomainLimiter(10.0) // 100ms between requests
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		begin := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		assert.GreaterOrEqual(t, time.Since(begin), 50*time.Millisecond)
	})

	t.Run("canceled context aborts the wait", func(t *testing.T) {
		t.Parallel()

		limiter := wohttp.NewDomainLimiter(0.001)
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "example.com")
		assert.Error(t, err)
	})
}

func TestRateLimitedFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("waits on the URL's domain before delegating", func(t *testing.T) {
		t.Parallel()

		var waitedDomain string
		fetched := false
		fetcher := wohttp.NewRateLimitedFetcher(
			&mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					fetched = true
					return []byte("ok"), nil
				},
			},
			&mock.DomainLimiter{
				WaitFn: func(ctx context.Context, domain string) error {
					waitedDomain = domain
					return nil
				},
			},
		)

		body, err := fetcher.Fetch(context.Background(), "https://example.com/page")

		require.NoError(t, err)
		assert.Equal(t, []byte("ok"), body)
		assert.Equal(t, "example.com", waitedDomain)
		assert.True(t, fetched)
	})

	t.Run("limiter error aborts the fetch", func(t *testing.T) {
		t.Parallel()

		fetcher := wohttp.NewRateLimitedFetcher(
			&mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					t.Fatal("fetch should not be called")
					return nil, nil
				},
			},
			&mock.DomainLimiter{
				WaitFn: func(ctx context.Context, domain string) error {
					return context.Canceled
				},
			},
		)

		_, err := fetcher.Fetch(context.Background(), "https://example.com/page")
		assert.Error(t, err)
	})
}
