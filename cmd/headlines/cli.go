package main

import (
	"context"
	"io"
	"log/slog"
	nethttp "net/http"

	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/config"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	Config       *config.Config
	Scraper      headlines.Scraper
	TopHeadlines headlines.TopHeadlinesService
	Resolver     *config.Resolver
	HTTPClient   *nethttp.Client
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape headlines from a news page"`
	Top    TopCmd    `cmd:"" help:"Fetch top headlines from NewsAPI"`
	Serve  ServeCmd  `cmd:"" help:"Serve headlines as JSON over HTTP"`
	URL    URLCmd    `cmd:"" name:"url" help:"Print the full API URL for an endpoint"`
	Get    GetCmd    `cmd:"" help:"Request an endpoint from the configured API"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Count   int    `short:"n" default:"20" help:"Maximum number of headlines"`
	URL     string `name:"url" help:"News page to scrape (default: HEADLINES_SITE_URL)"`
	Site    string `help:"Source label for headlines scraped from --url (default: host name)"`
	Browser bool   `short:"b" help:"Render the page with headless Chrome"`
	JSON    bool   `name:"json" help:"Print headlines as JSON"`
}

// TopCmd is the "top" subcommand.
type TopCmd struct {
	Categories []string `short:"c" name:"category" help:"NewsAPI category (repeatable, default: business, technology, general, health, science)"`
	PageSize   int      `default:"8" help:"Articles requested per category"`
	Country    string   `default:"us" help:"Country code"`
	JSON       bool     `name:"json" help:"Print headlines as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr    string `help:"Listen address (default: HEADLINES_ADDR or :8080)"`
	Browser bool   `short:"b" help:"Render scraped pages with headless Chrome"`
}

// URLCmd is the "url" subcommand.
type URLCmd struct {
	Endpoint string `arg:"" help:"Endpoint path, e.g. /api/headlines"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Endpoint string `arg:"" help:"Endpoint path, e.g. /api/top-headlines"`
}
