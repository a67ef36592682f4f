package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gunal77/web-hackathon/classify"
	"github.com/Gunal77/web-hackathon/models"
)

func TestCalculateRiskLevel(t *testing.T) {
	tests := []struct {
		name        string
		sentiment   models.Sentiment
		pendingDays int
		want        models.RiskLevel
	}{
		{"severe fresh", models.SentimentSevereDistress, 0, models.RiskCritical},
		{"severe old", models.SentimentSevereDistress, 40, models.RiskCritical},
		{"negative at boundary", models.SentimentNegative, 10, models.RiskLow},
		{"negative past boundary", models.SentimentNegative, 11, models.RiskHigh},
		{"neutral at boundary", models.SentimentNeutral, 15, models.RiskLow},
		{"neutral past boundary", models.SentimentNeutral, 16, models.RiskModerate},
		{"neutral very old", models.SentimentNeutral, 400, models.RiskModerate},
		{"positive fresh", models.SentimentPositive, 0, models.RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify.CalculateRiskLevel(tt.sentiment, tt.pendingDays, models.DepartmentRoads)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateRiskLevelPositiveNeverEscalates(t *testing.T) {
	for _, days := range []int{0, 1, 10, 11, 15, 16, 100, 1 << 20} {
		for _, dept := range models.DepartmentCategories {
			assert.Equal(t, models.RiskLow, classify.CalculateRiskLevel(models.SentimentPositive, days, dept))
		}
	}
}

func TestCalculateRiskLevelIgnoresDepartment(t *testing.T) {
	for _, dept := range models.DepartmentCategories {
		assert.Equal(t, models.RiskHigh, classify.CalculateRiskLevel(models.SentimentNegative, 11, dept))
	}
}
