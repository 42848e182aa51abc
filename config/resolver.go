package config

import (
	"log/slog"
	"strings"
)

// Resolver builds absolute API URLs from endpoint paths. When no base URL is
// configured it produces root-relative paths, which only work behind a
// development proxy.
type Resolver struct {
	base   string
	dev    bool
	logger *slog.Logger
}

// NewResolver creates a Resolver for base. Trailing slashes are stripped from
// base. Outside development an empty base is logged as a warning.
func NewResolver(base string, dev bool, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Resolver{
		base:   strings.TrimRight(strings.TrimSpace(base), "/"),
		dev:    dev,
		logger: logger,
	}
	if r.base == "" && !dev {
		logger.Warn("API URL is not set; requests will use relative paths",
			"hint", "set HEADLINES_API_URL to the deployed server URL")
	}
	return r
}

// Base returns the configured base URL without trailing slashes.
func (r *Resolver) Base() string {
	return r.base
}

// Configured reports whether a base URL is set.
func (r *Resolver) Configured() bool {
	return r.base != ""
}

// URL returns the full URL for endpoint. A single leading slash on endpoint
// is ignored.
func (r *Resolver) URL(endpoint string) string {
	clean := strings.TrimPrefix(endpoint, "/")

	if r.base != "" {
		u := r.base + "/" + clean
		if r.dev {
			r.logger.Debug("api call", "url", u)
		}
		return u
	}

	if !r.dev {
		r.logger.Warn("API URL not configured", "endpoint", clean)
	}
	return "/" + clean
}
