package aggregate_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunal77/web-hackathon/aggregate"
	"github.com/Gunal77/web-hackathon/models"
)

func manu(district, taluk string, risk models.RiskLevel, sentiment models.Sentiment, status models.ManuStatus, days int) models.Manu {
	return models.Manu{
		District:           district,
		Taluk:              taluk,
		DepartmentCategory: models.DepartmentRoads,
		RiskLevel:          risk,
		Sentiment:          sentiment,
		Status:             status,
		PendingDays:        days,
	}
}

func TestRiskColorFor(t *testing.T) {
	tests := []struct {
		name            string
		total, high, sd int
		want            models.RiskColor
	}{
		{"empty is green", 0, 0, 0, models.RiskColorGreen},
		{"exactly forty percent is yellow", 10, 4, 10, models.RiskColorYellow},
		{"above forty percent is red", 10, 5, 0, models.RiskColorRed},
		{"severe distress above ten is red", 100, 0, 11, models.RiskColorRed},
		{"exactly twenty percent is green", 10, 2, 0, models.RiskColorGreen},
		{"above twenty percent is yellow", 100, 21, 0, models.RiskColorYellow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aggregate.RiskColorFor(tt.total, tt.high, tt.sd))
		})
	}
}

func TestDistrictStats(t *testing.T) {
	manus := []models.Manu{
		manu("Chennai", "Egmore", models.RiskCritical, models.SentimentSevereDistress, models.StatusSubmitted, 3),
		manu("Madurai", "Melur", models.RiskLow, models.SentimentPositive, models.StatusResolved, 4),
		manu("Chennai", "Guindy", models.RiskHigh, models.SentimentNegative, models.StatusResolved, 12),
		manu("Chennai", "Egmore", models.RiskLow, models.SentimentNeutral, models.StatusInProgress, 2),
		manu("Madurai", "Melur", models.RiskModerate, models.SentimentNeutral, models.StatusSubmitted, 17),
	}

	stats := aggregate.DistrictStats(manus)
	require.Len(t, stats, 2)

	chennai := stats[0]
	assert.Equal(t, "Chennai", chennai.District)
	assert.Equal(t, 3, chennai.Total)
	assert.Equal(t, 2, chennai.HighAndCritical)
	assert.Equal(t, 1, chennai.SevereDistressCount)
	assert.Equal(t, 1, chennai.ResolvedCount)
	assert.Equal(t, 6, chennai.AveragePendingDays) // 17/3 = 5.67
	assert.Equal(t, models.RiskColorRed, chennai.RiskColor)

	madurai := stats[1]
	assert.Equal(t, 2, madurai.Total)
	assert.Equal(t, 0, madurai.HighAndCritical)
	assert.Equal(t, 11, madurai.AveragePendingDays) // 10.5 rounds up
	assert.Equal(t, models.RiskColorGreen, madurai.RiskColor)
}

func TestDistrictStatsTotalsCoverEveryManu(t *testing.T) {
	districts := []string{"Salem", "Erode", "Theni", "Karur"}
	manus := make([]models.Manu, 0, 97)
	for i := 0; i < 97; i++ {
		manus = append(manus, manu(districts[i%len(districts)], fmt.Sprintf("T%d", i%3),
			models.RiskLevels[i%4], models.Sentiments[i%4], models.ManuStatuses[i%3], i%20))
	}

	sum := 0
	for _, s := range aggregate.DistrictStats(manus) {
		sum += s.Total
	}
	assert.Equal(t, len(manus), sum)
}

func TestTalukStatsForDistrict(t *testing.T) {
	manus := []models.Manu{
		manu("Chennai", "Egmore", models.RiskCritical, models.SentimentSevereDistress, models.StatusSubmitted, 3),
		manu("Chennai", "Guindy", models.RiskHigh, models.SentimentNegative, models.StatusResolved, 12),
		manu("Chennai", "Egmore", models.RiskLow, models.SentimentNeutral, models.StatusInProgress, 2),
		manu("Salem", "Egmore", models.RiskLow, models.SentimentNeutral, models.StatusInProgress, 2),
	}

	rows := aggregate.TalukStatsForDistrict("Chennai", manus)
	require.Len(t, rows, 2)
	assert.Equal(t, models.TalukStats{Taluk: "Egmore", Total: 2, HighAndCritical: 1, SevereDistressCount: 1, AveragePendingDays: 3}, rows[0])
	assert.Equal(t, models.TalukStats{Taluk: "Guindy", Total: 1, HighAndCritical: 1, AveragePendingDays: 12}, rows[1])

	assert.Empty(t, aggregate.TalukStatsForDistrict("Nilgiris", manus))
}

func TestCategoryStats(t *testing.T) {
	a := manu("Chennai", "Egmore", models.RiskCritical, models.SentimentSevereDistress, models.StatusSubmitted, 3)
	b := manu("Chennai", "Egmore", models.RiskLow, models.SentimentPositive, models.StatusSubmitted, 3)
	c := manu("Chennai", "Egmore", models.RiskHigh, models.SentimentNegative, models.StatusSubmitted, 3)
	c.DepartmentCategory = models.DepartmentHealth

	rows := aggregate.CategoryStats([]models.Manu{a, b, c})
	require.Len(t, rows, 2)
	assert.Equal(t, models.DepartmentRoads, rows[0].Category)
	assert.Equal(t, map[models.RiskLevel]int{models.RiskLow: 1, models.RiskModerate: 0, models.RiskHigh: 0, models.RiskCritical: 1}, rows[0].ByRisk)
	assert.Equal(t, 1, rows[0].SevereDistressCount)
	assert.Equal(t, 1, rows[1].ByRisk[models.RiskHigh])
}

func TestSentimentDistribution(t *testing.T) {
	manus := []models.Manu{
		manu("A", "a", models.RiskLow, models.SentimentNeutral, models.StatusSubmitted, 0),
		manu("A", "a", models.RiskLow, models.SentimentPositive, models.StatusSubmitted, 0),
		manu("A", "a", models.RiskLow, models.SentimentNeutral, models.StatusSubmitted, 0),
	}
	assert.Equal(t, []models.SentimentCount{
		{Sentiment: models.SentimentNeutral, Count: 2},
		{Sentiment: models.SentimentPositive, Count: 1},
	}, aggregate.SentimentDistribution(manus))
	assert.Empty(t, aggregate.SentimentDistribution(nil))
}
