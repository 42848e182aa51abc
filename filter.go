package headlines

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// TragedyPattern matches headlines about death or violence. Such headlines
// are never returned.
var TragedyPattern = regexp.MustCompile(`(?i)\b(?:death|dead(?:ly|lier|liest|liness)?\b|dying|die[sd]?\b|kill|crash|disaster|crisis|crises|war(?:s|fare|time|ships?|planes?|zones?|lords?|heads?|ring)?\b|attack|murder|assassinat|massacre|terroris|bomb|shooting|gunman)`)

// IsTragic reports whether text matches TragedyPattern.
func IsTragic(text string) bool {
	return TragedyPattern.MatchString(text)
}

// Normalize collapses runs of whitespace into single spaces and trims the result.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Len returns the length of s in characters.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}
