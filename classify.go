package headlines

import "regexp"

// Keyword patterns used by the topic rules. Matching is case-insensitive and
// anchored at a word start so that stems like "politic" match "political"
// while short tokens like "ai" do not match inside "said".
var (
	PoliticalPattern = regexp.MustCompile(`(?i)\b(?:politic|election|congress|senate|president|government|policy|policies|legislat|vote|voting|democrat|republican|biden|trump|kamala|harris)`)
	WorldPattern     = regexp.MustCompile(`(?i)\b(?:international|world|countr|nation|diplomat|summit|treaty|treaties|geopolitic|russia|china|ukrain|israel|palestin|nato\b|eu\b|united nations)`)
	TechPattern      = regexp.MustCompile(`(?i)\b(?:tech|ai\b|software|digital|cyber|quantum|blockchain|apple|google|microsoft|meta\b|tesla|nvidia)`)
	CorporatePattern = regexp.MustCompile(`(?i)\b(?:business|econom|market|stock|trade|trading|financ|bank|corporat|compan|ceo\b|merger|acquisition)`)
	HealthPattern    = regexp.MustCompile(`(?i)\b(?:health|medical|hospital|doctor|treatment|disease|medicine)`)
	SciencePattern   = regexp.MustCompile(`(?i)\b(?:science|scientif|research|study|studies|discover|scientist|experiment)`)

	// Reduced patterns, historically used for class-marker and
	// structured-data headlines.
	BriefPoliticalPattern = regexp.MustCompile(`(?i)\b(?:politic|election|congress|senate|president|government)`)
	BriefWorldPattern     = regexp.MustCompile(`(?i)\b(?:international|world|countr|nation)`)
)

// Rule tags a headline with Type when Pattern matches.
type Rule struct {
	Type    Type
	Pattern *regexp.Regexp
}

// Rule sets. Order is significant: the first matching rule wins.
var (
	// NewsRules is the full cascade for scraped news headlines.
	NewsRules = []Rule{
		{TypePolitical, PoliticalPattern},
		{TypeWorld, WorldPattern},
		{TypeTech, TechPattern},
		{TypeCorporate, CorporatePattern},
	}

	// BriefRules is the reduced political > world cascade.
	BriefRules = []Rule{
		{TypePolitical, BriefPoliticalPattern},
		{TypeWorld, BriefWorldPattern},
	}

	// TopicRules is the cascade for headline API articles.
	TopicRules = []Rule{
		{TypeTech, TechPattern},
		{TypeCorporate, CorporatePattern},
		{TypeHealth, HealthPattern},
		{TypeScience, SciencePattern},
	}
)

// Classifier assigns a Type to headline text using an ordered rule list.
type Classifier struct {
	Rules   []Rule
	Default Type
}

// NewClassifier returns a Classifier over rules that falls back to TypeCorporate.
func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{Rules: rules, Default: TypeCorporate}
}

// Classify returns the Type of the first rule matching text, or the default.
func (c *Classifier) Classify(text string) Type {
	for _, r := range c.Rules {
		if r.Pattern.MatchString(text) {
			return r.Type
		}
	}
	if c.Default == "" {
		return TypeCorporate
	}
	return c.Default
}
