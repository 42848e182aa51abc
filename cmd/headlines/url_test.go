package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/headlines"
	main "github.com/fwojciec/headlines/cmd/headlines"
	"github.com/fwojciec/headlines/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints relative path in development", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Resolver: config.NewResolver("", true, nil),
		}

		err := (&main.URLCmd{Endpoint: "api/headlines"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "/api/headlines\n", stdout.String())
	})
}

func TestGetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires a configured API URL", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Resolver: config.NewResolver("", true, nil),
		}

		err := (&main.GetCmd{Endpoint: "/health"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, headlines.EINVALID, headlines.ErrorCode(err))
		assert.Contains(t, stderr.String(), "HEADLINES_API_URL")
	})

	t.Run("returns unavailable on non-2xx status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer srv.Close()

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     &bytes.Buffer{},
			Resolver:   config.NewResolver(srv.URL, false, nil),
			HTTPClient: srv.Client(),
		}

		err := (&main.GetCmd{Endpoint: "/health"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, headlines.EUNAVAILABLE, headlines.ErrorCode(err))
	})

	t.Run("passes non-JSON bodies through", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("plain text"))
		}))
		defer srv.Close()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Resolver:   config.NewResolver(srv.URL, false, nil),
			HTTPClient: srv.Client(),
		}

		err := (&main.GetCmd{Endpoint: "/health"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "plain text", stdout.String())
	})
}
