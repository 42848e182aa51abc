// Package scrape ties a Fetcher and an Extractor into a headlines.Scraper.
package scrape

import (
	"context"
	"log/slog"

	"github.com/fwojciec/headlines"
)

var _ headlines.Scraper = (*Scraper)(nil)

// Scraper fetches a news page and extracts its headlines.
type Scraper struct {
	Fetcher   headlines.Fetcher
	Extractor headlines.Extractor

	// PageURL is the page to scrape. Defaults to headlines.DefaultPageURL.
	PageURL string

	// Logger receives fetch and parse failures. Optional.
	Logger *slog.Logger
}

// Scrape returns at most count headlines from the page. Fetch and parse
// failures are logged and produce an empty slice.
func (s *Scraper) Scrape(ctx context.Context, count int) []*headlines.Headline {
	pageURL := s.PageURL
	if pageURL == "" {
		pageURL = headlines.DefaultPageURL
	}

	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		s.logger().Error("scrape fetch failed", "url", pageURL, "err", err)
		return []*headlines.Headline{}
	}

	hs, err := s.Extractor.Extract(html, count)
	if err != nil {
		s.logger().Error("scrape extract failed", "url", pageURL, "err", err)
		return []*headlines.Headline{}
	}
	return hs
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
