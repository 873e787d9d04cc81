// Package slog provides logging decorators for webone services.
package slog

import (
	"log/slog"
	"time"

	"github.com/webonehq/webone"
)

// Ensure LoggingExtractor implements webone.Extractor.
var _ webone.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured logging around each
// extraction run.
type LoggingExtractor struct {
	next   webone.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next webone.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(url string, rawHTML []byte) *webone.Result {
	begin := time.Now()
	result := e.next.Extract(url, rawHTML)
	e.logger.Info("extraction completed",
		"url", url,
		"status_code", result.Header.StatusCode,
		"links", result.Body.Links.Total(),
		"images", len(result.Body.Images),
		"scripts", len(result.Body.Scripts),
		"duration", time.Since(begin),
	)
	return result
}
