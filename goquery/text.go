package goquery

import (
	"regexp"
	"strings"

	"github.com/fwojciec/headlines"
)

// boilerplatePatterns match navigation and promo labels that sit in the same
// markup as real headlines.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:see all|subscribe|log in|sign up|skip|menu|search|watch|listen|follow|edition|sign in|my account)\b`),
	regexp.MustCompile(`(?i)^(?:video|live|breaking|developing|analysis|opinion|photos|gallery|interactive|newsletter|podcast)\b`),
	regexp.MustCompile(`(?i)^(?:cyber monday|black friday|deals|ad feedback|close icon)\b`),
	regexp.MustCompile(`<\s*[A-Za-z!/]`),
}

var letter = regexp.MustCompile(`\pL`)

// isBoilerplate reports whether normalized text is a label rather than a headline.
func (e *Extractor) isBoilerplate(text string) bool {
	for _, re := range boilerplatePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	if !letter.MatchString(text) {
		return true
	}
	return strings.EqualFold(text, e.site.Name)
}

// clean normalizes raw scraped text and returns it with ok=false if it is
// boilerplate or not longer than minScrapedLen.
func (e *Extractor) clean(raw string) (text string, ok bool) {
	text = headlines.Normalize(raw)
	if headlines.Len(text) <= minScrapedLen || e.isBoilerplate(text) {
		return "", false
	}
	return text, true
}
