package headlines

import (
	"net/url"
	"strings"
)

// Extractor pulls headlines out of a fetched HTML document.
type Extractor interface {
	// Extract parses html and returns at most max deduplicated, filtered,
	// classified and shuffled headlines.
	// Returns EINVALID if the document cannot be parsed.
	Extract(html string, max int) ([]*Headline, error)
}

// Site describes a scraped news site.
type Site struct {
	// Name is the provenance label put on every headline, e.g. "CNN".
	// A headline equal to the site name is rejected as boilerplate.
	Name string

	// Origin is the scheme and host relative links resolve against.
	Origin string

	// Sections are path fragments that mark article links, e.g. "/world/".
	Sections []string

	// HeadlineSelector matches nodes carrying headline class markers.
	HeadlineSelector string
}

// CNN is the default scraped site.
var CNN = Site{
	Name:             "CNN",
	Origin:           "https://www.cnn.com",
	Sections:         []string{"/world/"},
	HeadlineSelector: `.container__headline, .headline, [data-editable="headlineText"]`,
}

// DefaultPageURL is the page scraped when none is configured.
const DefaultPageURL = "https://www.cnn.com/world"

// ResolveURL resolves href against the site origin.
// Returns an empty string if href cannot be parsed.
func (s Site) ResolveURL(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	base, err := url.Parse(s.Origin)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// SiteFromURL returns a Site for an arbitrary page URL, reusing the CNN
// selectors. The origin is taken from the page URL and name from its host.
func SiteFromURL(pageURL, name string) (Site, error) {
	u, err := url.Parse(pageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Site{}, Errorf(EINVALID, "invalid page URL: %q", pageURL)
	}
	site := CNN
	site.Origin = u.Scheme + "://" + u.Host
	site.Name = name
	if site.Name == "" {
		site.Name = strings.TrimPrefix(u.Hostname(), "www.")
	}
	if p := strings.Trim(u.Path, "/"); p != "" {
		site.Sections = []string{"/" + p + "/"}
	}
	return site, nil
}
