package main

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Dependencies holds shared services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Run the extraction HTTP API"`
	Extract ExtractCmd `cmd:"" help:"Extract one or more page URLs to a local sink"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr     string        `default:":8080" help:"HTTP listen address"`
	Keywords string        `default:"keywords.yaml" help:"Path to the keywords definition file"`
	DB       string        `help:"Persist results to this SQLite database"`
	Out      string        `help:"Persist results as JSON files in this directory"`
	Timeout  time.Duration `default:"10s" help:"Upstream page fetch timeout"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string      `arg:"" name:"url" help:"Page URLs to extract"`
	Keywords    string        `default:"keywords.yaml" help:"Path to the keywords definition file"`
	Out         string        `help:"Write JSON files to this directory instead of stdout"`
	DB          string        `help:"Persist results to this SQLite database"`
	RPS         float64       `default:"1" help:"Per-domain requests per second"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Timeout     time.Duration `default:"10s" help:"Upstream page fetch timeout"`
}
