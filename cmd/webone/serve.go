package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/webonehq/webone"
	"github.com/webonehq/webone/classify"
	"github.com/webonehq/webone/fs"
	"github.com/webonehq/webone/goquery"
	wohttp "github.com/webonehq/webone/http"
	woslog "github.com/webonehq/webone/slog"
	"github.com/webonehq/webone/sqlite"
	"github.com/webonehq/webone/yaml"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	// A missing or malformed keywords definition is fatal; there is no
	// per-request recovery for classification config.
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

	fetcher := wohttp.NewFetcher(wohttp.WithTimeout(c.Timeout))
	defer fetcher.Close()

	opts := []wohttp.ServerOption{wohttp.WithServerLogger(deps.Logger)}
	if store != nil {
		opts = append(opts, wohttp.WithResultStore(store))
	}
	server := wohttp.NewServer(fetcher, extractor, opts...)

	srv := &http.Server{Addr: c.Addr, Handler: server}
	deps.Logger.Info("starting api server", "addr", c.Addr)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-deps.Ctx.Done():
		deps.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// buildStore selects the result sink from flags: SQLite when a database
// path is set, JSON files when an output directory is set, none otherwise.
func buildStore(dbPath, outDir string) (webone.ResultStore, func(), error) {
	switch {
	case dbPath != "":
		db := sqlite.NewDB(dbPath)
		if err := db.Open(); err != nil {
			return nil, nil, fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		return sqlite.NewResultService(db), func() { _ = db.Close() }, nil
	case outDir != "":
		return fs.NewStore(outDir), func() {}, nil
	default:
		return nil, func() {}, nil
	}
}
