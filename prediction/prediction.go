// Package prediction serves the forecast panels of the collector dashboard.
// The values are fixed, hand-authored tables; the district and date range
// arguments are accepted for interface compatibility and do not change the
// result.
package prediction

import (
	"time"

	"github.com/Gunal77/web-hackathon/models"
)

// SeasonalForecasts returns the expected seasonal increase per department
func SeasonalForecasts(_ string, _, _ time.Time) []models.SeasonalForecast {
	return []models.SeasonalForecast{
		{
			Department:          models.DepartmentWaterSupply,
			ExpectedIncreasePct: 35,
			HighRiskMonths:      []string{"Apr", "May", "Jun"},
			Reason:              "Past summer data: water shortage complaints rise 30–40%",
		},
		{
			Department:          models.DepartmentRoads,
			ExpectedIncreasePct: 28,
			HighRiskMonths:      []string{"Oct", "Nov"},
			Reason:              "Monsoon damage; road complaints typically spike post-rain",
		},
		{
			Department:          models.DepartmentHealth,
			ExpectedIncreasePct: 22,
			HighRiskMonths:      []string{"Jul", "Aug", "Sep"},
			Reason:              "Seasonal illnesses; rainy season drives health complaints",
		},
		{
			Department:          models.DepartmentElectricity,
			ExpectedIncreasePct: 18,
			HighRiskMonths:      []string{"Apr", "May"},
			Reason:              "Summer demand; power outage complaints increase",
		},
	}
}

// DeptSLAPredictions returns which departments are expected to miss the SLA
func DeptSLAPredictions(_ string) []models.DeptSLAPrediction {
	return []models.DeptSLAPrediction{
		{
			Department:      models.DepartmentRoads,
			LikelyToMissSLA: true,
			Confidence:      models.ConfidenceHigh,
			Reason:          "Current backlog 42; avg resolution 18d vs 15d SLA",
		},
		{
			Department:      models.DepartmentHealth,
			LikelyToMissSLA: true,
			Confidence:      models.ConfidenceMedium,
			Reason:          "28 open; 3 critical; resolution trend worsening",
		},
		{
			Department:      models.DepartmentWaterSupply,
			LikelyToMissSLA: false,
			Confidence:      models.ConfidenceHigh,
			Reason:          "Resolution within SLA; low backlog",
		},
	}
}

// DistrictCriticalPredictions returns which districts are expected to see critical manus
func DistrictCriticalPredictions(_ string) []models.DistrictCriticalPrediction {
	return []models.DistrictCriticalPrediction{
		{
			District:       "Chennai",
			LikelyCritical: true,
			Confidence:     models.ConfidenceHigh,
			Reason:         "4 critical petitions this month; sentiment trend up",
		},
		{
			District:       "Madurai",
			LikelyCritical: true,
			Confidence:     models.ConfidenceMedium,
			Reason:         "High pending days; 2 critical in 30d",
		},
		{
			District:       "Coimbatore",
			LikelyCritical: false,
			Confidence:     models.ConfidenceHigh,
			Reason:         "Low critical count; stable resolution",
		},
	}
}
