package mock

import (
	"context"

	"github.com/webonehq/webone"
)

var _ webone.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of webone.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
