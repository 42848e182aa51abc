// Package newsapi implements headlines.TopHeadlinesService using the NewsAPI
// top-headlines endpoint (https://newsapi.org/docs/endpoints/top-headlines).
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/headlines"
	"golang.org/x/time/rate"
)

// Defaults for Client.
const (
	DefaultBaseURL  = "https://newsapi.org/v2"
	DefaultCountry  = "us"
	DefaultPageSize = 8
	DefaultDelay    = 500 * time.Millisecond
	DefaultTimeout  = 10 * time.Second

	// DefaultSource labels articles without a provider name.
	DefaultSource = "News API"
)

// DefaultCategories returns the categories queried when none are configured.
func DefaultCategories() []string {
	return []string{"business", "technology", "general", "health", "science"}
}

// categoryTypes maps API categories to the tag they imply. An explicit
// category beats any keyword match in the title.
var categoryTypes = map[string]headlines.Type{
	"technology": headlines.TypeTech,
	"business":   headlines.TypeCorporate,
	"health":     headlines.TypeHealth,
	"science":    headlines.TypeScience,
}

// removedTitle is what the API returns in place of retracted articles.
const removedTitle = "[Removed]"

var _ headlines.TopHeadlinesService = (*Client)(nil)

// Article is a single article returned by the API.
type Article struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CategoryResult is the outcome of one category request.
type CategoryResult struct {
	Category string
	Articles []Article
	Err      error
}

type response struct {
	Status   string    `json:"status"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Articles []Article `json:"articles"`
}

// Client queries top headlines for a fixed list of categories, one request
// at a time with a fixed minimum delay between requests.
type Client struct {
	apiKey     string
	baseURL    string
	country    string
	categories []string
	pageSize   int
	delay      time.Duration
	client     *http.Client
	logger     *slog.Logger
	exclude    *regexp.Regexp
	classifier *headlines.Classifier
	rand       *rand.Rand
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API base URL. Defaults to DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithCountry sets the country code sent with each request.
func WithCountry(country string) Option {
	return func(c *Client) {
		c.country = country
	}
}

// WithCategories sets the categories to query, in order.
func WithCategories(categories ...string) Option {
	return func(c *Client) {
		c.categories = categories
	}
}

// WithPageSize sets the number of articles requested per category.
func WithPageSize(n int) Option {
	return func(c *Client) {
		c.pageSize = n
	}
}

// WithDelay sets the minimum delay between category requests.
// A zero delay disables pacing.
func WithDelay(d time.Duration) Option {
	return func(c *Client) {
		c.delay = d
	}
}

// WithHTTPClient sets the HTTP client. Defaults to a client with DefaultTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithLogger sets the logger for per-category failures and totals.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithExclude sets the pattern of titles that are never returned.
// Defaults to headlines.TragedyPattern.
func WithExclude(re *regexp.Regexp) Option {
	return func(c *Client) {
		c.exclude = re
	}
}

// WithRand sets the source used to shuffle results.
func WithRand(r *rand.Rand) Option {
	return func(c *Client) {
		c.rand = r
	}
}

// NewClient creates a Client. An empty apiKey is valid: TopHeadlines then
// returns the fallback headlines without touching the network.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		country:    DefaultCountry,
		categories: DefaultCategories(),
		pageSize:   DefaultPageSize,
		delay:      DefaultDelay,
		client:     &http.Client{Timeout: DefaultTimeout},
		logger:     slog.New(slog.DiscardHandler),
		exclude:    headlines.TragedyPattern,
		classifier: headlines.NewClassifier(headlines.TopicRules),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TopHeadlines collects headlines across all categories. Failed categories
// are logged and skipped. If nothing is collected the fallback headlines
// are returned.
func (c *Client) TopHeadlines(ctx context.Context) []*headlines.Headline {
	if c.apiKey == "" {
		c.logger.Info("news api key not set, using fallback headlines")
		return headlines.Fallback()
	}

	seen := headlines.NewSeen()
	var hs []*headlines.Headline
	for _, res := range c.FetchAll(ctx) {
		if res.Err != nil {
			if headlines.ErrorCode(res.Err) == headlines.EUNAUTHORIZED {
				c.logger.Error("news api key rejected", "category", res.Category, "err", res.Err)
			} else {
				c.logger.Warn("category fetch failed", "category", res.Category, "err", res.Err)
			}
			continue
		}
		for _, a := range res.Articles {
			if h := c.headline(res.Category, a, seen); h != nil {
				hs = append(hs, h)
			}
		}
	}

	c.logger.Info("top headlines collected", "count", len(hs))
	if len(hs) == 0 {
		return headlines.Fallback()
	}

	headlines.Shuffle(hs, c.rand)
	return hs
}

// FetchAll requests every configured category in order and returns one
// result per category. A failed category does not stop the others. The
// configured delay separates the end of one request from the start of the
// next.
func (c *Client) FetchAll(ctx context.Context) []CategoryResult {
	p := newPacer(c.delay)

	results := make([]CategoryResult, 0, len(c.categories))
	for _, category := range c.categories {
		res := CategoryResult{Category: category}
		if err := p.wait(ctx); err != nil {
			res.Err = err
		} else {
			res.Articles, res.Err = c.FetchCategory(ctx, category)
			p.done()
		}
		results = append(results, res)
	}
	return results
}

// pacer holds back the next request until a full interval has passed since
// the previous one completed.
type pacer struct {
	limit   rate.Limit
	limiter *rate.Limiter
}

func newPacer(delay time.Duration) *pacer {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &pacer{limit: limit, limiter: rate.NewLimiter(limit, 1)}
}

// wait blocks until the interval has elapsed or ctx is done.
func (p *pacer) wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// done restarts the interval from now.
func (p *pacer) done() {
	p.limiter = rate.NewLimiter(p.limit, 1)
	p.limiter.Allow()
}

// FetchCategory requests the top headlines of a single category.
// Returns EUNAUTHORIZED if the API rejects the key and EUNAVAILABLE for
// other API or HTTP errors.
func (c *Client) FetchCategory(ctx context.Context, category string) ([]Article, error) {
	u, err := url.Parse(c.baseURL + "/top-headlines")
	if err != nil {
		return nil, headlines.Errorf(headlines.EINVALID, "invalid base URL %q: %v", c.baseURL, err)
	}
	q := u.Query()
	if c.country != "" {
		q.Set("country", c.country)
	}
	q.Set("category", category)
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s headlines: %w", category, err)
	}
	defer resp.Body.Close()

	var body response
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode == http.StatusUnauthorized || strings.HasPrefix(body.Code, "apiKey") {
		return nil, headlines.Errorf(headlines.EUNAUTHORIZED, "invalid or missing API key: %s", body.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || body.Status == "error" {
		msg := body.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, headlines.Errorf(headlines.EUNAVAILABLE, "HTTP %d for %s headlines: %s", resp.StatusCode, category, msg)
	}
	if decodeErr != nil {
		return nil, headlines.Errorf(headlines.EUNAVAILABLE, "decoding %s headlines: %v", category, decodeErr)
	}

	return body.Articles, nil
}

// headline converts an article, returning nil for articles without a title,
// already seen, or excluded.
func (c *Client) headline(category string, a Article, seen headlines.Seen) *headlines.Headline {
	title := strings.TrimSpace(a.Title)
	if title == "" || title == removedTitle || seen.Has(title) {
		return nil
	}
	if c.exclude != nil && c.exclude.MatchString(title) {
		return nil
	}
	seen.Add(title)

	source := a.Source.Name
	if source == "" {
		source = DefaultSource
	}

	return &headlines.Headline{
		Type:   c.classify(category, title),
		Text:   title,
		Source: source,
		Real:   true,
		URL:    a.URL,
	}
}

func (c *Client) classify(category, title string) headlines.Type {
	if t, ok := categoryTypes[category]; ok {
		return t
	}
	return c.classifier.Classify(title)
}
