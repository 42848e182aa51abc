package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/headlines"
)

var datedPath = regexp.MustCompile(`/\d{4}/\d{2}/\d{2}/`)

// nonArticlePaths mark links to media and live pages.
var nonArticlePaths = []string{"/video/", "/videos/", "/live-news/", "/gallery/", "/interactive/"}

const (
	headingSelector = `h2, h3, h4, span.headline, span.container__headline`
	labelSelector   = `[data-editable="headlineText"]`
)

// scanAnchors collects headlines from links that point at articles.
func (e *Extractor) scanAnchors(doc *goquery.Document, acc *accumulator) {
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if acc.full() {
			return false
		}

		href, _ := a.Attr("href")
		u := e.site.ResolveURL(href)
		if u == "" || !e.isArticleURL(u) {
			return true
		}

		text, ok := e.clean(anchorText(a))
		if !ok {
			return true
		}

		acc.offer(e.headline(text, u, e.primary))
		return true
	})
}

// isArticleURL reports whether u looks like an article: a dated path or a
// known section path, and not a media or live page.
func (e *Extractor) isArticleURL(u string) bool {
	for _, p := range nonArticlePaths {
		if strings.Contains(u, p) {
			return false
		}
	}
	if datedPath.MatchString(u) {
		return true
	}
	for _, s := range e.site.Sections {
		if strings.Contains(u, s) {
			return true
		}
	}
	return false
}

// anchorText finds the headline for a link. Card layouts often wrap an image
// in the link and put the headline in a sibling element, so the search widens
// from the link text to its descendants, its parent and finally attributes.
func anchorText(a *goquery.Selection) string {
	text := strings.TrimSpace(a.Text())
	if headlines.Len(text) >= 10 {
		return text
	}
	if h := a.Find(headingSelector).First(); h.Length() > 0 {
		return h.Text()
	}
	if h := a.Parent().Find(headingSelector).First(); h.Length() > 0 {
		return h.Text()
	}
	for _, name := range []string{"aria-label", "title"} {
		if v, _ := a.Attr(name); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return a.Find(labelSelector).Text()
}
