package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/headlines"
)

// Ensure LoggingScraper implements headlines.Scraper.
var _ headlines.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   headlines.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next headlines.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the result size.
func (s *LoggingScraper) Scrape(ctx context.Context, count int) (hs []*headlines.Headline) {
	defer func(begin time.Time) {
		s.logger.Info("scrape",
			"requested", count,
			"count", len(hs),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Scrape(ctx, count)
}

// Ensure LoggingTopHeadlinesService implements headlines.TopHeadlinesService.
var _ headlines.TopHeadlinesService = (*LoggingTopHeadlinesService)(nil)

// LoggingTopHeadlinesService wraps a TopHeadlinesService with logging.
type LoggingTopHeadlinesService struct {
	next   headlines.TopHeadlinesService
	logger *slog.Logger
}

// NewLoggingTopHeadlinesService creates a new LoggingTopHeadlinesService.
func NewLoggingTopHeadlinesService(next headlines.TopHeadlinesService, logger *slog.Logger) *LoggingTopHeadlinesService {
	return &LoggingTopHeadlinesService{next: next, logger: logger}
}

// TopHeadlines delegates to the wrapped service and logs whether live data
// was returned.
func (s *LoggingTopHeadlinesService) TopHeadlines(ctx context.Context) (hs []*headlines.Headline) {
	defer func(begin time.Time) {
		s.logger.Info("top headlines",
			"count", len(hs),
			"live", isLive(hs),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.TopHeadlines(ctx)
}

func isLive(hs []*headlines.Headline) bool {
	for _, h := range hs {
		if h.Real {
			return true
		}
	}
	return false
}
