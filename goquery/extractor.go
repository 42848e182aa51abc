// Package goquery implements headlines.Extractor using CSS selectors over a
// parsed HTML document.
package goquery

import (
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/headlines"
)

var _ headlines.Extractor = (*Extractor)(nil)

// Minimum headline lengths (exclusive) per strategy.
const (
	minScrapedLen    = 15
	minStructuredLen = 10
)

// Extractor scrapes headlines from a news page using three strategies run in
// order: article anchors, headline class markers, and JSON-LD blocks.
// An Extractor holds no per-document state and is safe for concurrent use
// when its rand source is.
type Extractor struct {
	site      headlines.Site
	primary   *headlines.Classifier
	secondary *headlines.Classifier
	exclude   *regexp.Regexp
	rand      *rand.Rand
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSecondaryRules sets the rules used to classify headlines found by the
// class-marker and JSON-LD strategies. Defaults to headlines.NewsRules.
func WithSecondaryRules(rules []headlines.Rule) Option {
	return func(e *Extractor) {
		e.secondary = headlines.NewClassifier(rules)
	}
}

// WithExclude sets the pattern of headlines that are never returned.
// Defaults to headlines.TragedyPattern.
func WithExclude(re *regexp.Regexp) Option {
	return func(e *Extractor) {
		e.exclude = re
	}
}

// WithRand sets the source used to shuffle results.
func WithRand(r *rand.Rand) Option {
	return func(e *Extractor) {
		e.rand = r
	}
}

// NewExtractor creates an Extractor for site.
func NewExtractor(site headlines.Site, opts ...Option) *Extractor {
	e := &Extractor{
		site:      site,
		primary:   headlines.NewClassifier(headlines.NewsRules),
		secondary: headlines.NewClassifier(headlines.NewsRules),
		exclude:   headlines.TragedyPattern,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and returns at most max headlines in random order.
func (e *Extractor) Extract(html string, max int) ([]*headlines.Headline, error) {
	if max <= 0 {
		return []*headlines.Headline{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, headlines.Errorf(headlines.EINVALID, "failed to parse HTML: %v", err)
	}

	acc := newAccumulator(max, e.exclude)
	e.scanAnchors(doc, acc)
	e.scanClasses(doc, acc)
	e.scanStructuredData(doc, acc)

	result := acc.headlines
	headlines.Shuffle(result, e.rand)
	if len(result) > max {
		result = result[:max]
	}
	return result, nil
}

// accumulator collects headlines for one Extract call. It is passed to each
// strategy in turn so deduplication spans all of them.
type accumulator struct {
	max       int
	exclude   *regexp.Regexp
	seen      headlines.Seen
	headlines []*headlines.Headline
}

func newAccumulator(max int, exclude *regexp.Regexp) *accumulator {
	return &accumulator{
		max:       max,
		exclude:   exclude,
		seen:      headlines.NewSeen(),
		headlines: make([]*headlines.Headline, 0, max),
	}
}

func (a *accumulator) full() bool {
	return len(a.headlines) >= a.max
}

// offer appends h unless the accumulator is full, the text was seen, or the
// text is excluded. Reports whether h was appended.
func (a *accumulator) offer(h *headlines.Headline) bool {
	if a.full() || a.seen.Has(h.Text) {
		return false
	}
	if a.exclude != nil && a.exclude.MatchString(h.Text) {
		return false
	}
	a.seen.Add(h.Text)
	a.headlines = append(a.headlines, h)
	return true
}

func (e *Extractor) headline(text, url string, c *headlines.Classifier) *headlines.Headline {
	return &headlines.Headline{
		Type:   c.Classify(text),
		Text:   text,
		Source: e.site.Name,
		Real:   true,
		URL:    url,
	}
}
