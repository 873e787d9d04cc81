package mock

import (
	"context"

	"github.com/webonehq/webone"
)

var _ webone.ResultStore = (*ResultStore)(nil)

// ResultStore is a mock implementation of webone.ResultStore.
type ResultStore struct {
	SaveResultFn func(ctx context.Context, result *webone.Result) error
}

func (s *ResultStore) SaveResult(ctx context.Context, result *webone.Result) error {
	return s.SaveResultFn(ctx, result)
}
