// Package scoring turns classified manus into a priority score and a
// display-time lifecycle label, and sorts collections for ranked views.
package scoring

import (
	"math"
	"sort"

	"github.com/Gunal77/web-hackathon/classify"
	"github.com/Gunal77/web-hackathon/models"
)

// Score weights and bounds
const (
	SevereDistressWeight = 50
	HighRiskWeight       = 30
	ModerateRiskWeight   = 15
	PendingDayWeight     = 1.5

	MinScore = 0
	MaxScore = 100
)

// PriorityScore combines sentiment, risk and age into a score in [0,100].
// Only High and Moderate risk earn a risk bonus; Critical risk is already
// carried by the Severe Distress sentiment weight.
func PriorityScore(sentiment models.Sentiment, risk models.RiskLevel, pendingDays int) int {
	score := 0.0

	if sentiment == models.SentimentSevereDistress {
		score += SevereDistressWeight
	}

	switch risk {
	case models.RiskHigh:
		score += HighRiskWeight
	case models.RiskModerate:
		score += ModerateRiskWeight
	}

	score += float64(pendingDays) * PendingDayWeight

	rounded := int(math.Round(score))
	if rounded > MaxScore {
		return MaxScore
	}
	if rounded < MinScore {
		return MinScore
	}
	return rounded
}

// Derived holds the fields computed from a manu's text, age and department
type Derived struct {
	Sentiment     models.Sentiment
	RiskLevel     models.RiskLevel
	PriorityScore int
}

// Derive runs classification and scoring for one manu
func Derive(description string, pendingDays int, category models.DepartmentCategory) Derived {
	sentiment := classify.AnalyzeSentiment(description)
	risk := classify.CalculateRiskLevel(sentiment, pendingDays, category)
	return Derived{
		Sentiment:     sentiment,
		RiskLevel:     risk,
		PriorityScore: PriorityScore(sentiment, risk, pendingDays),
	}
}

// Apply overwrites the derived fields of m for its current pending days
func Apply(m *models.Manu) {
	d := Derive(m.DescriptionText, m.PendingDays, m.DepartmentCategory)
	m.Sentiment = d.Sentiment
	m.RiskLevel = d.RiskLevel
	m.PriorityScore = d.PriorityScore
}

// SortByPriority returns a copy of manus ordered by priority score, highest
// first. Manus with equal scores keep their input order.
func SortByPriority(manus []models.Manu) []models.Manu {
	out := make([]models.Manu, len(manus))
	copy(out, manus)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PriorityScore > out[j].PriorityScore
	})
	return out
}

// SortByPendingDays returns a copy of manus ordered by age, oldest first.
// Ties keep their input order.
func SortByPendingDays(manus []models.Manu) []models.Manu {
	out := make([]models.Manu, len(manus))
	copy(out, manus)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PendingDays > out[j].PendingDays
	})
	return out
}
