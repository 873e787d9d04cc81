package slog_test

import (
	"bytes"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webonehq/webone"
	"github.com/webonehq/webone/mock"
	"github.com/webonehq/webone/slog"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	next := &mock.Extractor{
		ExtractFn: func(url string, rawHTML []byte) *webone.Result {
			return &webone.Result{
				Header: webone.Header{
					URL:        url,
					StatusCode: webone.StatusOK,
					StatusMsg:  webone.StatusMsgOK,
				},
				Body: webone.Body{
					Links: webone.LinkGroups{
						Inlinks: []webone.Link{{Href: "https://example.com/a"}},
					},
				},
			}
		},
	}

	extractor := slog.NewLoggingExtractor(next, logger)
	result := extractor.Extract("https://example.com/", []byte("<html></html>"))

	require.NotNil(t, result)
	assert.Equal(t, "https://example.com/", result.Header.URL)

	out := buf.String()
	assert.Contains(t, out, "extraction completed")
	assert.Contains(t, out, "url=https://example.com/")
	assert.Contains(t, out, "status_code=200")
	assert.Contains(t, out, "links=1")
}
