// Package performance computes SLA and resolution-time rollups per department
// and per district, including the best/worst rankings shown to collectors.
package performance

import (
	"math"
	"sort"

	"github.com/Gunal77/web-hackathon/models"
)

// SLATargetDays is the resolution target a resolved manu is measured against
const SLATargetDays = 15

// NoDepartment is reported when a district has no resolved manus to rank
const NoDepartment = "-"

// MaxNeedsFocus caps how many districts are flagged for attention
const MaxNeedsFocus = 5

// Level derives the department performance tier
func Level(avgComplete, slaBreachPct int) models.PerformanceLevel {
	switch {
	case avgComplete <= 10 && slaBreachPct <= 10:
		return models.PerformanceGood
	case avgComplete <= 18 && slaBreachPct <= 25:
		return models.PerformanceWarning
	default:
		return models.PerformancePoor
	}
}

// DistrictRiskFor derives the district performance risk
func DistrictRiskFor(critical, avgResolutionDays int) models.DistrictRisk {
	switch {
	case critical > 5 || avgResolutionDays > 20:
		return models.DistrictRiskHigh
	case critical > 2 || avgResolutionDays > 15:
		return models.DistrictRiskMedium
	default:
		return models.DistrictRiskLow
	}
}

// FirstActionDays estimates how long a manu waited for its first action.
// Submitted manus have had no action and report false.
func FirstActionDays(m models.Manu) (int, bool) {
	switch m.Status {
	case models.StatusResolved:
		return min(5, max(1, m.PendingDays/5)), true
	case models.StatusInProgress:
		return min(3, m.PendingDays), true
	default:
		return 0, false
	}
}

func roundedAverage(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}

func roundedPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

type departmentAccumulator struct {
	total            int
	completed        int
	closureSum       int
	firstActionSum   int
	firstActionCount int
	breached         int
}

// Department computes per-department SLA metrics. An empty district or
// AllDistricts covers every manu.
func Department(manus []models.Manu, district string) []models.DepartmentPerformance {
	order := make([]models.DepartmentCategory, 0)
	byDept := make(map[models.DepartmentCategory]*departmentAccumulator)

	for _, m := range manus {
		if district != "" && district != models.AllDistricts && m.District != district {
			continue
		}
		acc, ok := byDept[m.DepartmentCategory]
		if !ok {
			acc = &departmentAccumulator{}
			byDept[m.DepartmentCategory] = acc
			order = append(order, m.DepartmentCategory)
		}
		acc.total++

		if days, ok := FirstActionDays(m); ok {
			acc.firstActionCount++
			acc.firstActionSum += days
		}
		if m.Status == models.StatusResolved {
			acc.completed++
			acc.closureSum += m.PendingDays
			if m.PendingDays > SLATargetDays {
				acc.breached++
			}
		}
	}

	result := make([]models.DepartmentPerformance, 0, len(order))
	for _, dept := range order {
		acc := byDept[dept]
		avgComplete := roundedAverage(acc.closureSum, acc.completed)
		breachPct := roundedPercent(acc.breached, acc.completed)
		result = append(result, models.DepartmentPerformance{
			Department:           dept,
			Total:                acc.total,
			AvgTimeToFirstAction: roundedAverage(acc.firstActionSum, acc.firstActionCount),
			AvgTimeToComplete:    avgComplete,
			SLABreachPct:         breachPct,
			Performance:          Level(avgComplete, breachPct),
		})
	}
	return result
}

type resolvedAccumulator struct {
	count   int
	sumDays int
}

type districtAccumulator struct {
	total       int
	critical    int
	completed   int
	closureSum  int
	deptOrder   []models.DepartmentCategory
	deptTotals  map[models.DepartmentCategory]int
	resolvedOrd []models.DepartmentCategory
	resolved    map[models.DepartmentCategory]*resolvedAccumulator
}

// bestAndWorst ranks departments by average resolution days. Best is the
// strictly lowest average, worst the strictly highest above zero; the first
// department seen wins ties.
func (acc *districtAccumulator) bestAndWorst() (string, string) {
	best, worst := NoDepartment, NoDepartment
	bestAvg, worstAvg := math.Inf(1), 0.0

	for _, dept := range acc.resolvedOrd {
		d := acc.resolved[dept]
		if d.count < 1 {
			continue
		}
		avg := float64(d.sumDays) / float64(d.count)
		if avg < bestAvg {
			bestAvg = avg
			best = string(dept)
		}
		if avg > worstAvg {
			worstAvg = avg
			worst = string(dept)
		}
	}
	return best, worst
}

func (acc *districtAccumulator) departmentRates() []models.DepartmentRate {
	rates := make([]models.DepartmentRate, 0, len(acc.deptOrder))
	for _, dept := range acc.deptOrder {
		count := acc.deptTotals[dept]
		rates = append(rates, models.DepartmentRate{
			Department: dept,
			Count:      count,
			Rate:       roundedPercent(count, acc.total),
		})
	}
	sort.SliceStable(rates, func(i, j int) bool {
		return rates[i].Count > rates[j].Count
	})
	return rates
}

// goodnessScore ranks districts for the isBest flag
func goodnessScore(d models.DistrictPerformance) int {
	return d.Total - d.Critical*2 - d.AvgResolutionDays
}

// District computes per-district resolution metrics, flags the single best
// district and up to MaxNeedsFocus districts needing attention, and returns
// the rows ordered by total manus, largest first. Ranking ties are broken by
// the order districts first appear in manus.
func District(manus []models.Manu) []models.DistrictPerformance {
	order := make([]string, 0)
	byDistrict := make(map[string]*districtAccumulator)

	for _, m := range manus {
		acc, ok := byDistrict[m.District]
		if !ok {
			acc = &districtAccumulator{
				deptTotals: make(map[models.DepartmentCategory]int),
				resolved:   make(map[models.DepartmentCategory]*resolvedAccumulator),
			}
			byDistrict[m.District] = acc
			order = append(order, m.District)
		}
		acc.total++
		if m.IsCritical() {
			acc.critical++
		}

		dept := m.DepartmentCategory
		if _, seen := acc.deptTotals[dept]; !seen {
			acc.deptOrder = append(acc.deptOrder, dept)
		}
		acc.deptTotals[dept]++

		if m.Status == models.StatusResolved {
			acc.completed++
			acc.closureSum += m.PendingDays
			r, seen := acc.resolved[dept]
			if !seen {
				r = &resolvedAccumulator{}
				acc.resolved[dept] = r
				acc.resolvedOrd = append(acc.resolvedOrd, dept)
			}
			r.count++
			r.sumDays += m.PendingDays
		}
	}

	results := make([]models.DistrictPerformance, 0, len(order))
	for _, district := range order {
		acc := byDistrict[district]
		avgResolution := roundedAverage(acc.closureSum, acc.completed)
		best, worst := acc.bestAndWorst()
		results = append(results, models.DistrictPerformance{
			District:          district,
			Total:             acc.total,
			Critical:          acc.critical,
			Resolved:          acc.completed,
			AvgResolutionDays: avgResolution,
			BestDepartment:    best,
			WorstDepartment:   worst,
			RiskLevel:         DistrictRiskFor(acc.critical, avgResolution),
			DepartmentRates:   acc.departmentRates(),
		})
	}

	markBest(results)
	markNeedsFocus(results)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Total > results[j].Total
	})
	return results
}

func markBest(results []models.DistrictPerformance) {
	bestIdx := -1
	for i := range results {
		if bestIdx == -1 || goodnessScore(results[i]) > goodnessScore(results[bestIdx]) {
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		results[bestIdx].IsBest = true
	}
}

func markNeedsFocus(results []models.DistrictPerformance) {
	candidates := make([]int, 0)
	for i, r := range results {
		if r.RiskLevel == models.DistrictRiskHigh || r.Critical > 3 {
			candidates = append(candidates, i)
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return results[candidates[a]].Critical > results[candidates[b]].Critical
	})
	if len(candidates) > MaxNeedsFocus {
		candidates = candidates[:MaxNeedsFocus]
	}
	for _, i := range candidates {
		results[i].NeedsFocus = true
	}
}
