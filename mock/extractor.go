package mock

import "github.com/webonehq/webone"

var _ webone.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webone.Extractor.
type Extractor struct {
	ExtractFn func(url string, rawHTML []byte) *webone.Result
}

func (e *Extractor) Extract(url string, rawHTML []byte) *webone.Result {
	return e.ExtractFn(url, rawHTML)
}
