package classify

import "github.com/Gunal77/web-hackathon/models"

// Age thresholds for risk escalation, in days
const (
	NegativeHighRiskDays    = 10
	NeutralModerateRiskDays = 15
)

// CalculateRiskLevel derives the risk level of a manu. The department is part
// of the signature for callers but does not influence the result. Positive
// sentiment is always Low, however old the manu is.
func CalculateRiskLevel(sentiment models.Sentiment, pendingDays int, _ models.DepartmentCategory) models.RiskLevel {
	switch {
	case sentiment == models.SentimentSevereDistress:
		return models.RiskCritical
	case sentiment == models.SentimentNegative && pendingDays > NegativeHighRiskDays:
		return models.RiskHigh
	case sentiment == models.SentimentNeutral && pendingDays > NeutralModerateRiskDays:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}
