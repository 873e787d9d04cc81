package main

import (
	"encoding/json"
	"fmt"

	"github.com/webonehq/webone"
	"github.com/webonehq/webone/classify"
	"github.com/webonehq/webone/goquery"
	wohttp "github.com/webonehq/webone/http"
	woslog "github.com/webonehq/webone/slog"
	"github.com/webonehq/webone/yaml"
	"golang.org/x/sync/errgroup"
)

// Run executes the extract command: fetch and extract each URL
// concurrently, then emit the records in input order.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	cfg, err := yaml.LoadClassifierConfig(c.Keywords)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	store, cleanup, err := buildStore(c.DB, c.Out)
	if err != nil {
		return err
	}
	defer cleanup()

	extractor := woslog.NewLoggingExtractor(
		goquery.New(classify.New(cfg), goquery.WithLogger(deps.Logger)),
		deps.Logger,
	)

	fetcher := wohttp.NewRateLimitedFetcher(
		wohttp.NewFetcher(wohttp.WithTimeout(c.Timeout)),
		wohttp.NewDomainLimiter(c.RPS),
	)
	defer fetcher.Close()

	results := make([]*webone.Result, len(c.URLs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, pageURL := range c.URLs {
		g.Go(func() error {
			rawHTML, err := fetcher.Fetch(ctx, pageURL)
			if err != nil {
				// A failed fetch degrades to the pipeline's empty-input
				// path so the record still reports the failure sentinel.
				deps.Logger.Warn("page fetch failed", "url", pageURL, "error", err)
			}
			results[i] = extractor.Extract(pageURL, rawHTML)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, result := range results {
		if store != nil {
			if err := store.SaveResult(deps.Ctx, result); err != nil {
				return fmt.Errorf("failed to save result for %s: %w", result.Header.URL, err)
			}
			continue
		}

		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	}

	return nil
}
