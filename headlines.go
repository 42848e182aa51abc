// Package headlines fetches news headlines from a scraped news site and from
// a headline API, tags them with a coarse topic, and hands them to a front end
// as plain JSON-serializable records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, newsapi/).
package headlines

import (
	"context"
	"encoding/json"
)

// Type is a best-effort topic tag for a headline.
type Type string

// Headline topic tags.
const (
	TypePolitical Type = "political"
	TypeWorld     Type = "world"
	TypeTech      Type = "tech"
	TypeCorporate Type = "corporate"
	TypeHealth    Type = "health"
	TypeScience   Type = "science"
	TypeWeather   Type = "weather"
	TypeMarket    Type = "market"
	TypeTraffic   Type = "traffic"
)

// Headline is a single normalized news item ready for display.
type Headline struct {
	Type   Type   `json:"type"`
	Text   string `json:"text"`
	Source string `json:"source"`
	Real   bool   `json:"real,omitempty"`
	URL    string `json:"url"` // empty is serialized as null
}

// MarshalJSON encodes a missing URL as null.
func (h Headline) MarshalJSON() ([]byte, error) {
	var u *string
	if h.URL != "" {
		u = &h.URL
	}
	return json.Marshal(struct {
		Type   Type    `json:"type"`
		Text   string  `json:"text"`
		Source string  `json:"source"`
		Real   bool    `json:"real,omitempty"`
		URL    *string `json:"url"`
	}{h.Type, h.Text, h.Source, h.Real, u})
}

// Scraper returns headlines scraped from a news site.
type Scraper interface {
	// Scrape returns at most count headlines. It never fails: transport and
	// parse problems are logged and yield an empty slice.
	Scrape(ctx context.Context, count int) []*Headline
}

// TopHeadlinesService returns headlines from a headline API.
type TopHeadlinesService interface {
	// TopHeadlines returns live headlines, or the Fallback list when none
	// could be collected. It never fails.
	TopHeadlines(ctx context.Context) []*Headline
}
