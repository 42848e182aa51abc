package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/mock"
	hslog "github.com/fwojciec/headlines/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingScraper_Scrape(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Scraper{
		ScrapeFn: func(ctx context.Context, count int) []*headlines.Headline {
			return []*headlines.Headline{{Text: "Harbor festival draws record crowds", Real: true}}
		},
	}

	hs := hslog.NewLoggingScraper(inner, slog.New(slog.NewTextHandler(&buf, nil))).Scrape(context.Background(), 20)

	assert.Len(t, hs, 1)
	output := buf.String()
	assert.Contains(t, output, "msg=scrape")
	assert.Contains(t, output, "requested=20")
	assert.Contains(t, output, "count=1")
}

func TestLoggingTopHeadlinesService_TopHeadlines(t *testing.T) {
	t.Parallel()

	t.Run("reports fallback data as not live", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.TopHeadlinesService{
			TopHeadlinesFn: func(ctx context.Context) []*headlines.Headline {
				return headlines.Fallback()
			},
		}

		hs := hslog.NewLoggingTopHeadlinesService(inner, slog.New(slog.NewTextHandler(&buf, nil))).TopHeadlines(context.Background())

		assert.Len(t, hs, 4)
		assert.Contains(t, buf.String(), "count=4")
		assert.Contains(t, buf.String(), "live=false")
	})

	t.Run("reports live data", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.TopHeadlinesService{
			TopHeadlinesFn: func(ctx context.Context) []*headlines.Headline {
				return []*headlines.Headline{{Text: "Markets rally on jobs data", Real: true}}
			},
		}

		_ = hslog.NewLoggingTopHeadlinesService(inner, slog.New(slog.NewTextHandler(&buf, nil))).TopHeadlines(context.Background())

		assert.Contains(t, buf.String(), "live=true")
	})
}
