// Package classify derives sentiment, critical subtype and risk level for a
// manu. Classification is deterministic keyword matching over an ordered rule
// table: the first rule whose keywords occur in the text decides the result.
package classify

import "github.com/Gunal77/web-hackathon/models"

type sentimentRule struct {
	keywords *keywordSet
	result   models.Sentiment
}

// sentimentRules are evaluated in order, most severe first
var sentimentRules = []sentimentRule{
	{
		keywords: newKeywordSet("suicide", "kill myself", "end my life", "no hope", "threat"),
		result:   models.SentimentSevereDistress,
	},
	{
		keywords: newKeywordSet("angry", "complaint", "corruption", "harassment", "issue"),
		result:   models.SentimentNegative,
	},
	{
		keywords: newKeywordSet("request", "please", "support"),
		result:   models.SentimentNeutral,
	},
}

// AnalyzeSentiment classifies a free text description. Text matching none of
// the keyword tiers, including the empty string, is Positive.
func AnalyzeSentiment(text string) models.Sentiment {
	normalized := normalize(text)
	for _, rule := range sentimentRules {
		if rule.keywords.Any(normalized) {
			return rule.result
		}
	}
	return models.SentimentPositive
}

// SentimentKeywords returns the keywords that map to s. Positive has none.
func SentimentKeywords(s models.Sentiment) []string {
	for _, rule := range sentimentRules {
		if rule.result == s {
			return rule.keywords.Keywords()
		}
	}
	return nil
}
