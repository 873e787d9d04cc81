package webone

import "context"

// ResultStore persists extraction results. It is an output sink, not a
// pipeline concern: the pipeline produces the same Result whether or not a
// store is configured.
type ResultStore interface {
	SaveResult(ctx context.Context, result *Result) error
}
