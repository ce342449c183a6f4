package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/doccorpus/config"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Logger  *slog.Logger
	Scraper *Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" default:"doccorpus.toml" help:"Path to TOML config file"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape a documentation site into a Markdown/JSON corpus"`
	Serve  ServeCmd  `cmd:"" help:"Run the scrape HTTP API"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL      string   `arg:"" help:"Documentation base URL"`
	Filter   []string `short:"F" name:"filter" help:"Only crawl URLs matching regex (repeatable)"`
	Exclude  []string `short:"X" name:"exclude" help:"Skip URLs matching regex (repeatable)"`
	Output   string   `short:"o" help:"Output directory (overrides config)"`
	Prefix   string   `short:"p" help:"Output filename prefix (overrides config)"`
	MaxPages int      `help:"Page limit (overrides config)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
}
