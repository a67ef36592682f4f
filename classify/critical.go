package classify

import "github.com/Gunal77/web-hackathon/models"

type criticalRule struct {
	keywords *keywordSet
	result   models.CriticalSentimentType
}

var criticalRules = []criticalRule{
	{
		keywords: newKeywordSet("suicide", "kill myself", "end my life", "no hope", "threat", "want to die"),
		result:   models.CriticalSuicideRisk,
	},
	{
		keywords: newKeywordSet("extremely angry", "frustrated", "cannot take", "helpless", "nothing works", "give up"),
		result:   models.CriticalExtremeFrustration,
	},
	{
		keywords: newKeywordSet("mental", "depression", "anxiety", "stress", "distress", "trauma", "breakdown"),
		result:   models.CriticalMentalDistress,
	},
	{
		keywords: newKeywordSet("emergency", "urgent", "critical", "heart attack", "stroke", "unconscious", "immediate"),
		result:   models.CriticalHealthEmergency,
	},
}

// CriticalSentimentType labels a flagged description for display. It returns
// nil when no critical pattern matches. The result never feeds back into the
// stored sentiment or risk level.
func CriticalSentimentType(text string) *models.CriticalSentimentType {
	normalized := normalize(text)
	for _, rule := range criticalRules {
		if rule.keywords.Any(normalized) {
			t := rule.result
			return &t
		}
	}
	return nil
}
