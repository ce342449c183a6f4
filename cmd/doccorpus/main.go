package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/doccorpus"
	"github.com/fwojciec/doccorpus/config"
	"github.com/fwojciec/doccorpus/corpus"
	"github.com/fwojciec/doccorpus/crawl"
	"github.com/fwojciec/doccorpus/extract"
	"github.com/fwojciec/doccorpus/fs"
	"github.com/fwojciec/doccorpus/gemini"
	"github.com/fwojciec/doccorpus/goquery"
	"github.com/fwojciec/doccorpus/htmltomarkdown"
	dochttp "github.com/fwojciec/doccorpus/http"
	"github.com/fwojciec/doccorpus/rod"
	docslog "github.com/fwojciec/doccorpus/slog"
	"github.com/fwojciec/doccorpus/sqlite"
	"github.com/fwojciec/doccorpus/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, open only when the sqlite cache backend is
	// configured.
	DB *sqlite.DB

	// Loader owns the browser; closing it shuts the browser down.
	Loader doccorpus.Loader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Loader != nil {
		if err := m.Loader.Close(); err != nil {
			return err
		}
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("doccorpus"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'doccorpus --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := strings.Fields(kongCtx.Command())[0]

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config %q: %w", cli.Config, err)
	}
	deps.Config = cfg

	level := logLevel(cfg.Logging.Level)
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Both commands drive the full scrape pipeline; the browser and
	// cache are only started when one of them runs.
	if command == "scrape" || command == "serve" {
		scraper, err := m.buildScraper(cli, cfg, deps.Logger, stderr)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Scraper = scraper
	}

	return kongCtx.Run(deps)
}

// buildScraper wires the scrape pipeline from configuration.
func (m *Main) buildScraper(cli *CLI, cfg *config.Config, logger *slog.Logger, stderr io.Writer) (*Scraper, error) {
	manager, err := rod.NewBrowserManager()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	var loader doccorpus.Loader = rod.NewLoader(manager,
		rod.WithPageTimeout(cfg.Browser.GetPageTimeout()),
	)
	if cli.Verbose {
		loader = rod.NewLoggingLoader(loader, logger)
	}
	m.Loader = loader

	cache, err := m.openCache(cfg, logger)
	if err != nil {
		return nil, err
	}

	crawler := &crawl.Crawler{
		Sitemaps:    docslog.NewLoggingSitemapService(dochttp.NewSitemapService(nil), logger),
		Loader:      loader,
		Extractor:   extract.NewCascade(htmltomarkdown.NewConverter(), trafilatura.NewExtractor(), logger),
		Links:       goquery.NewLinkDiscoverer(),
		Cache:       cache,
		Limiter:     crawl.NewDomainLimiter(cfg.Crawler.CallsPerSecond),
		Logger:      logger,
		Concurrency: cfg.Crawler.Workers,
		MaxPages:    cfg.Crawler.MaxPages,
	}

	// Token counting is advisory; a tokenizer that fails to initialize
	// (e.g. model data unavailable offline) downgrades to a warning.
	var counter doccorpus.TokenCounter
	if tc, err := gemini.NewTokenCounter(tokenizerModel); err != nil {
		logger.Warn("token counter unavailable", "model", tokenizerModel, "err", err)
	} else {
		counter = tc
	}

	var sink doccorpus.UploadSink
	if cfg.Upload.Dir != "" {
		sink = fs.NewArchiveSink(cfg.Upload.Dir, logger)
	}

	return &Scraper{
		Crawler:   crawler,
		Assembler: corpus.NewAssembler(doccorpus.NewTagger(nil, logger), logger),
		Counter:   counter,
		Sink:      sink,
		Logger:    logger,
		OutputDir: cfg.Output.Dir,
		Prefix:    cfg.Output.Prefix,
		SiteTitle: cfg.Output.SiteTitle,
	}, nil
}

func (m *Main) openCache(cfg *config.Config, logger *slog.Logger) (doccorpus.Cache, error) {
	switch cfg.Cache.Backend {
	case "sqlite":
		m.DB = sqlite.NewDB(cfg.Cache.Location)
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open cache database at %q: %w", cfg.Cache.Location, err)
		}
		return docslog.NewLoggingCache(sqlite.NewCache(m.DB, logger), logger), nil
	default:
		cache, err := fs.NewCache(cfg.Cache.Location, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open cache directory %q: %w", cfg.Cache.Location, err)
		}
		return docslog.NewLoggingCache(cache, logger), nil
	}
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// tokenizerModel is used for token counting.
const tokenizerModel = "gemini-2.5-flash"
