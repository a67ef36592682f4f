// Package aggregate groups manus by district, taluk, department or sentiment
// and computes the counts and averages used by the dashboards. Groups are
// returned in the order their key was first seen; callers sort as needed.
package aggregate

import (
	"math"

	"github.com/Gunal77/web-hackathon/models"
)

// District risk colour thresholds
const (
	RedHighRatio      = 0.4
	RedSevereDistress = 10
	YellowHighRatio   = 0.2
)

// groupBy partitions manus by key in a single pass, remembering first-seen order
func groupBy[K comparable](manus []models.Manu, key func(models.Manu) K) ([]K, map[K][]models.Manu) {
	order := make([]K, 0)
	groups := make(map[K][]models.Manu)
	for _, m := range manus {
		k := key(m)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], m)
	}
	return order, groups
}

type counts struct {
	total           int
	highAndCritical int
	severeDistress  int
	resolved        int
	pendingDaysSum  int
}

func countGroup(items []models.Manu) counts {
	var c counts
	for _, m := range items {
		c.total++
		if m.RiskLevel.IsHighOrCritical() {
			c.highAndCritical++
		}
		if m.Sentiment == models.SentimentSevereDistress {
			c.severeDistress++
		}
		if m.Status == models.StatusResolved {
			c.resolved++
		}
		c.pendingDaysSum += m.PendingDays
	}
	return c
}

func (c counts) averagePendingDays() int {
	if c.total == 0 {
		return 0
	}
	return int(math.Round(float64(c.pendingDaysSum) / float64(c.total)))
}

// RiskColorFor classifies a district from its high/critical and severe distress counts
func RiskColorFor(total, highAndCritical, severeDistress int) models.RiskColor {
	ratio := 0.0
	if total > 0 {
		ratio = float64(highAndCritical) / float64(total)
	}
	switch {
	case ratio > RedHighRatio || severeDistress > RedSevereDistress:
		return models.RiskColorRed
	case ratio > YellowHighRatio:
		return models.RiskColorYellow
	default:
		return models.RiskColorGreen
	}
}

// DistrictStats rolls manus up per district
func DistrictStats(manus []models.Manu) []models.DistrictStats {
	order, groups := groupBy(manus, func(m models.Manu) string { return m.District })

	result := make([]models.DistrictStats, 0, len(order))
	for _, district := range order {
		c := countGroup(groups[district])
		result = append(result, models.DistrictStats{
			District:            district,
			Total:               c.total,
			HighAndCritical:     c.highAndCritical,
			SevereDistressCount: c.severeDistress,
			AveragePendingDays:  c.averagePendingDays(),
			ResolvedCount:       c.resolved,
			RiskColor:           RiskColorFor(c.total, c.highAndCritical, c.severeDistress),
		})
	}
	return result
}

// TalukStatsForDistrict rolls up the manus of one district per taluk
func TalukStatsForDistrict(district string, manus []models.Manu) []models.TalukStats {
	scoped := make([]models.Manu, 0)
	for _, m := range manus {
		if m.District == district {
			scoped = append(scoped, m)
		}
	}
	order, groups := groupBy(scoped, func(m models.Manu) string { return m.Taluk })

	rows := make([]models.TalukStats, 0, len(order))
	for _, taluk := range order {
		c := countGroup(groups[taluk])
		rows = append(rows, models.TalukStats{
			Taluk:               taluk,
			Total:               c.total,
			HighAndCritical:     c.highAndCritical,
			SevereDistressCount: c.severeDistress,
			AveragePendingDays:  c.averagePendingDays(),
		})
	}
	return rows
}

// CategoryStats counts manus per risk level for every department present
func CategoryStats(manus []models.Manu) []models.CategoryStats {
	order, groups := groupBy(manus, func(m models.Manu) models.DepartmentCategory { return m.DepartmentCategory })

	rows := make([]models.CategoryStats, 0, len(order))
	for _, category := range order {
		byRisk := make(map[models.RiskLevel]int, len(models.RiskLevels))
		for _, r := range models.RiskLevels {
			byRisk[r] = 0
		}
		severe := 0
		for _, m := range groups[category] {
			byRisk[m.RiskLevel]++
			if m.Sentiment == models.SentimentSevereDistress {
				severe++
			}
		}
		rows = append(rows, models.CategoryStats{
			Category:            category,
			ByRisk:              byRisk,
			SevereDistressCount: severe,
		})
	}
	return rows
}

// SentimentDistribution counts manus per sentiment
func SentimentDistribution(manus []models.Manu) []models.SentimentCount {
	order, groups := groupBy(manus, func(m models.Manu) models.Sentiment { return m.Sentiment })

	result := make([]models.SentimentCount, 0, len(order))
	for _, s := range order {
		result = append(result, models.SentimentCount{Sentiment: s, Count: len(groups[s])})
	}
	return result
}
