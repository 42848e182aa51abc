package goquery

import (
	"encoding/json"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/headlines"
)

// scanStructuredData collects NewsArticle and Article entries from JSON-LD
// blocks. Blocks that are not valid JSON are skipped.
func (e *Extractor) scanStructuredData(doc *goquery.Document, acc *accumulator) {
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if acc.full() {
			return false
		}

		var data any
		if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
			return true
		}

		for _, item := range ldItems(data) {
			if acc.full() {
				break
			}
			if !isArticleType(item["@type"]) {
				continue
			}

			text := headlines.Normalize(firstString(item, "headline", "name"))
			if headlines.Len(text) <= minStructuredLen {
				continue
			}

			u := firstString(item, "url", "@id")
			if u != "" {
				u = e.site.ResolveURL(u)
			}

			acc.offer(e.headline(text, u, e.secondary))
		}
		return true
	})
}

// ldItems flattens a decoded JSON-LD value into its top-level objects,
// including entries of an "@graph" container.
func ldItems(v any) []map[string]any {
	var items []map[string]any
	switch v := v.(type) {
	case map[string]any:
		items = append(items, v)
		if graph, ok := v["@graph"].([]any); ok {
			items = append(items, ldItems(graph)...)
		}
	case []any:
		for _, el := range v {
			if m, ok := el.(map[string]any); ok {
				items = append(items, ldItems(m)...)
			}
		}
	}
	return items
}

// isArticleType reports whether a JSON-LD "@type" value names an article.
func isArticleType(v any) bool {
	switch v := v.(type) {
	case string:
		return v == "NewsArticle" || v == "Article"
	case []any:
		for _, t := range v {
			if isArticleType(t) {
				return true
			}
		}
	}
	return false
}

// firstString returns the first non-empty string value among keys.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
