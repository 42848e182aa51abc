package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/config"
	"github.com/fwojciec/headlines/goquery"
	headlineshttp "github.com/fwojciec/headlines/http"
	"github.com/fwojciec/headlines/newsapi"
	"github.com/fwojciec/headlines/rod"
	"github.com/fwojciec/headlines/scrape"
	hslog "github.com/fwojciec/headlines/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config overrides environment loading. Set before calling Run().
	Config *config.Config

	// Services for end-to-end testing. When nil, Run builds them from Config.
	Scraper             headlines.Scraper
	TopHeadlinesService headlines.TopHeadlinesService
	HTTPClient          *nethttp.Client

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close releases resources opened by Run.
func (m *Main) Close() error {
	var firstErr error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
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
		kong.Name("headlines"),
		kong.Description("Scrape, fetch and serve classified news headlines."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'headlines --help' to see available commands")
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

	cfg := m.Config
	if cfg == nil {
		if cfg, err = config.Load(); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	deps.Config = cfg
	deps.Logger = logger
	deps.HTTPClient = m.HTTPClient
	if deps.HTTPClient == nil {
		deps.HTTPClient = &nethttp.Client{Timeout: cfg.Timeout}
	}
	defer m.Close()

	switch cmd {
	case "scrape":
		pageURL, name := cfg.SiteURL, cfg.SiteName
		if cli.Scrape.URL != "" {
			pageURL, name = cli.Scrape.URL, cli.Scrape.Site
		}
		if deps.Scraper, err = m.scraper(cfg, logger, pageURL, name, cli.Scrape.Browser, stderr); err != nil {
			return err
		}
	case "top":
		opts := []newsapi.Option{
			newsapi.WithPageSize(cli.Top.PageSize),
			newsapi.WithCountry(cli.Top.Country),
		}
		if len(cli.Top.Categories) > 0 {
			opts = append(opts, newsapi.WithCategories(cli.Top.Categories...))
		}
		deps.TopHeadlines = m.topHeadlines(cfg, logger, opts...)
	case "serve":
		if deps.Scraper, err = m.scraper(cfg, logger, cfg.SiteURL, cfg.SiteName, cli.Serve.Browser, stderr); err != nil {
			return err
		}
		deps.TopHeadlines = m.topHeadlines(cfg, logger)
	case "url", "get":
		deps.Resolver = cfg.Resolver(logger)
	}

	return kongCtx.Run(deps)
}

// scraper builds the page scraper unless one was injected.
func (m *Main) scraper(cfg *config.Config, logger *slog.Logger, pageURL, name string, browser bool, stderr io.Writer) (headlines.Scraper, error) {
	if m.Scraper != nil {
		return m.Scraper, nil
	}

	site, err := headlines.SiteFromURL(pageURL, name)
	if err != nil {
		return nil, err
	}

	var fetcher headlines.Fetcher
	if browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cfg.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = headlineshttp.NewFetcher(headlineshttp.WithTimeout(cfg.Timeout))
	}
	m.closers = append(m.closers, fetcher)

	s := &scrape.Scraper{
		Fetcher:   hslog.NewLoggingFetcher(fetcher, logger),
		Extractor: goquery.NewExtractor(site),
		PageURL:   pageURL,
		Logger:    logger,
	}
	return hslog.NewLoggingScraper(s, logger), nil
}

// topHeadlines builds the NewsAPI client unless one was injected.
func (m *Main) topHeadlines(cfg *config.Config, logger *slog.Logger, opts ...newsapi.Option) headlines.TopHeadlinesService {
	if m.TopHeadlinesService != nil {
		return m.TopHeadlinesService
	}
	opts = append([]newsapi.Option{newsapi.WithLogger(logger)}, opts...)
	return hslog.NewLoggingTopHeadlinesService(newsapi.NewClient(cfg.NewsAPIKey, opts...), logger)
}
