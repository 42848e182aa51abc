package mock

import (
	"context"

	"github.com/fwojciec/headlines"
)

var _ headlines.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of headlines.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, count int) []*headlines.Headline
}

func (s *Scraper) Scrape(ctx context.Context, count int) []*headlines.Headline {
	return s.ScrapeFn(ctx, count)
}

var _ headlines.TopHeadlinesService = (*TopHeadlinesService)(nil)

// TopHeadlinesService is a mock implementation of headlines.TopHeadlinesService.
type TopHeadlinesService struct {
	TopHeadlinesFn func(ctx context.Context) []*headlines.Headline
}

func (s *TopHeadlinesService) TopHeadlines(ctx context.Context) []*headlines.Headline {
	return s.TopHeadlinesFn(ctx)
}
