package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/headlines"
)

// scanClasses collects headlines from nodes carrying headline class markers.
// The URL comes from the enclosing link and may be empty.
func (e *Extractor) scanClasses(doc *goquery.Document, acc *accumulator) {
	if e.site.HeadlineSelector == "" {
		return
	}

	doc.Find(e.site.HeadlineSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if acc.full() {
			return false
		}

		raw := strings.TrimSpace(sel.Text())
		if headlines.Len(raw) < 10 {
			return true
		}

		var u string
		if a := sel.Closest("a[href]"); a.Length() > 0 {
			href, _ := a.Attr("href")
			u = e.site.ResolveURL(href)
		}

		text, ok := e.clean(raw)
		if !ok {
			return true
		}

		acc.offer(e.headline(text, u, e.secondary))
		return true
	})
}
