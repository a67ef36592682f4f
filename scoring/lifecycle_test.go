package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gunal77/web-hackathon/models"
	"github.com/Gunal77/web-hackathon/scoring"
)

func TestLifecycleStatus(t *testing.T) {
	tests := []struct {
		name        string
		status      models.ManuStatus
		risk        models.RiskLevel
		pendingDays int
		want        models.LifecycleStatus
	}{
		{"escalated by critical risk beats action taken", models.StatusInProgress, models.RiskCritical, 2, models.LifecycleEscalated},
		{"escalated by high risk", models.StatusInProgress, models.RiskHigh, 5, models.LifecycleEscalated},
		{"escalated by age", models.StatusInProgress, models.RiskLow, 11, models.LifecycleEscalated},
		{"in progress at age boundary", models.StatusInProgress, models.RiskLow, 10, models.LifecycleUnderReview},
		{"action taken", models.StatusInProgress, models.RiskModerate, 3, models.LifecycleActionTaken},
		{"under review", models.StatusInProgress, models.RiskLow, 4, models.LifecycleUnderReview},
		{"resolved critical is completed", models.StatusResolved, models.RiskCritical, 30, models.LifecycleCompleted},
		{"submitted old", models.StatusSubmitted, models.RiskLow, 8, models.LifecyclePendingWithReason},
		{"submitted at boundary", models.StatusSubmitted, models.RiskHigh, 7, models.LifecycleNew},
		{"submitted critical is never escalated", models.StatusSubmitted, models.RiskCritical, 0, models.LifecycleNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoring.LifecycleStatus(tt.status, tt.risk, tt.pendingDays))
		})
	}
}

func TestDetail(t *testing.T) {
	m := models.Manu{
		ID:              "7",
		DescriptionText: "Health emergency - father had stroke, need immediate ambulance.",
		Status:          models.StatusInProgress,
		RiskLevel:       models.RiskLow,
		PendingDays:     1,
	}
	d := scoring.Detail(m)
	assert.Equal(t, models.LifecycleActionTaken, d.LifecycleStatus)
	if assert.NotNil(t, d.CriticalSentimentType) {
		assert.Equal(t, models.CriticalHealthEmergency, *d.CriticalSentimentType)
	}
	assert.Equal(t, m.DescriptionText, d.ShortSummary)
}
