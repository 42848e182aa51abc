package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/headlines"
	main "github.com/fwojciec/headlines/cmd/headlines"
	"github.com/fwojciec/headlines/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints one line per headline with its URL", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Scraper: &mock.Scraper{
				ScrapeFn: func(ctx context.Context, count int) []*headlines.Headline {
					return sampleHeadlines()
				},
			},
		}

		err := (&main.ScrapeCmd{Count: 5}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t,
			"[political] Senate votes on new election law today (CNN)\n"+
				"    https://www.cnn.com/2024/05/01/politics/senate-vote\n"+
				"[tech] Apple unveils new AI chip for data centers (CNN)\n",
			stdout.String())
	})

	t.Run("reports an empty result", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Scraper: &mock.Scraper{
				ScrapeFn: func(ctx context.Context, count int) []*headlines.Headline {
					return []*headlines.Headline{}
				},
			},
		}

		err := (&main.ScrapeCmd{Count: 5}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No headlines found.")
	})

	t.Run("prints an empty JSON array", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Scraper: &mock.Scraper{
				ScrapeFn: func(ctx context.Context, count int) []*headlines.Headline { return nil },
			},
		}

		err := (&main.ScrapeCmd{Count: 5, JSON: true}).Run(deps)

		require.NoError(t, err)
		assert.JSONEq(t, `[]`, stdout.String())
	})

	t.Run("rejects non-positive count", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		err := (&main.ScrapeCmd{Count: 0}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, headlines.EINVALID, headlines.ErrorCode(err))
		assert.Contains(t, stderr.String(), "count must be positive")
	})
}
