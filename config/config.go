// Package config loads runtime settings from the environment and resolves
// API endpoint URLs for clients of the headlines server.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/headlines"
	"github.com/joho/godotenv"
)

// Environment defaults.
const (
	DefaultAddr     = ":8080"
	DefaultSiteName = "CNN"
	DefaultTimeout  = 15 * time.Second
)

// Config holds settings for the headlines commands.
type Config struct {
	// NewsAPIKey authenticates against NewsAPI. Empty selects fallback data.
	NewsAPIKey string

	// APIURL is the base URL of a deployed headlines server.
	APIURL string

	// Dev is true when HEADLINES_ENV is "development".
	Dev bool

	Addr     string
	SiteURL  string
	SiteName string
	Timeout  time.Duration
	LogLevel slog.Level
}

// Load reads an optional .env file from the working directory and builds
// a Config from environment variables. A missing .env file is not an error;
// an unreadable or malformed one is.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without reading .env.
func FromEnv() (*Config, error) {
	c := &Config{
		NewsAPIKey: getEnv("NEWS_API_KEY", ""),
		APIURL:     getEnv("HEADLINES_API_URL", getEnv("VITE_API_URL", "")),
		Dev:        strings.EqualFold(getEnv("HEADLINES_ENV", ""), "development"),
		Addr:       getEnv("HEADLINES_ADDR", DefaultAddr),
		SiteURL:    getEnv("HEADLINES_SITE_URL", headlines.DefaultPageURL),
		SiteName:   getEnv("HEADLINES_SITE_NAME", DefaultSiteName),
		LogLevel:   ParseLevel(os.Getenv("LOG_LEVEL")),
	}

	timeout, err := getDuration("HEADLINES_TIMEOUT", DefaultTimeout)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("HEADLINES_TIMEOUT must be positive")
	}
	c.Timeout = timeout

	return c, nil
}

// Resolver returns a Resolver for the configured API URL.
func (c *Config) Resolver(logger *slog.Logger) *Resolver {
	return NewResolver(c.APIURL, c.Dev, logger)
}

// ParseLevel maps a LOG_LEVEL value to a slog level. Unknown values are info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
