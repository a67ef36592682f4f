// Package dashboard composes the role views from the full manu list: the
// collector overview, the taluk officer worklist and the citizen tracking list.
package dashboard

import (
	"math"
	"sort"

	"github.com/Gunal77/web-hackathon/filters"
	"github.com/Gunal77/web-hackathon/models"
	"github.com/Gunal77/web-hackathon/scoring"
)

// KanbanSize is the length of each collector kanban column
const KanbanSize = 4

// TopPriorityPerDepartment caps the manus listed under each department
const TopPriorityPerDepartment = 4

// CollectorOverview builds the collector dashboard for f. Totals are compared
// with the preceding range of the same length, filtered by district only.
func CollectorOverview(all []models.Manu, f filters.Filter) models.CollectorOverview {
	filtered := filters.Apply(all, f)
	critical := criticalOnly(filtered)

	prevFrom, prevTo := filters.PreviousRange(f.From, f.To)
	prevTotal, prevCritical := 0, 0
	for _, m := range all {
		if !filters.InDistrict(m, f.District) || !filters.IsWithinRange(m.CreatedDate, prevFrom, prevTo) {
			continue
		}
		prevTotal++
		if m.IsCritical() {
			prevCritical++
		}
	}

	return models.CollectorOverview{
		District: f.District,
		From:     f.From,
		To:       f.To,
		Total: models.CountWithChange{
			Count:    len(filtered),
			Previous: prevTotal,
			Change:   filters.PercentChange(len(filtered), prevTotal),
		},
		Critical: models.CountWithChange{
			Count:    len(critical),
			Previous: prevCritical,
			Change:   filters.PercentChange(len(critical), prevCritical),
		},
		Departments:       DepartmentLifecycles(filtered),
		Taluks:            TalukHotspots(filtered),
		Kanban:            BuildKanban(filtered),
		CriticalPetitions: scoring.Details(scoring.SortByPriority(critical)),
	}
}

func criticalOnly(manus []models.Manu) []models.Manu {
	out := make([]models.Manu, 0)
	for _, m := range manus {
		if m.IsCritical() {
			out = append(out, m)
		}
	}
	return out
}

// DepartmentLifecycles breaks manus down per department, in first-seen order.
// Closure days average the frozen pending days of resolved manus.
func DepartmentLifecycles(manus []models.Manu) []models.DepartmentLifecycle {
	var order []models.DepartmentCategory
	groups := make(map[models.DepartmentCategory][]models.Manu)
	for _, m := range manus {
		if _, ok := groups[m.DepartmentCategory]; !ok {
			order = append(order, m.DepartmentCategory)
		}
		groups[m.DepartmentCategory] = append(groups[m.DepartmentCategory], m)
	}

	out := make([]models.DepartmentLifecycle, 0, len(order))
	for _, dept := range order {
		items := groups[dept]
		entry := models.DepartmentLifecycle{
			Department:   dept,
			Total:        len(items),
			StatusCounts: make(map[models.LifecycleStatus]int, len(models.LifecycleStatuses)),
		}
		for _, l := range models.LifecycleStatuses {
			entry.StatusCounts[l] = 0
		}

		closureSum := 0
		for _, m := range items {
			entry.StatusCounts[scoring.LifecycleOf(m)]++
			if m.Status == models.StatusResolved {
				entry.CompletedCount++
				closureSum += m.PendingDays
			}
		}
		if entry.CompletedCount > 0 {
			entry.AvgClosureDays = roundedAverage(closureSum, entry.CompletedCount)
		}

		top := scoring.SortByPriority(items)
		if len(top) > TopPriorityPerDepartment {
			top = top[:TopPriorityPerDepartment]
		}
		entry.TopPriorityManus = top
		out = append(out, entry)
	}
	return out
}

// TalukHotspots summarises open workload per district and taluk. Hotspots are
// ranked by critical count, or by pending count where nothing is critical.
func TalukHotspots(manus []models.Manu) []models.TalukHotspot {
	type key struct{ district, taluk string }
	var order []key
	byKey := make(map[key]*models.TalukHotspot)

	for _, m := range manus {
		k := key{m.District, m.Taluk}
		h, ok := byKey[k]
		if !ok {
			h = &models.TalukHotspot{District: m.District, Taluk: m.Taluk}
			byKey[k] = h
			order = append(order, k)
		}
		h.Total++
		switch scoring.LifecycleOf(m) {
		case models.LifecycleNew, models.LifecycleUnderReview, models.LifecyclePendingWithReason:
			h.Pending++
		case models.LifecycleEscalated:
			h.Escalated++
		}
		if m.IsCritical() {
			h.Critical++
		}
	}

	out := make([]models.TalukHotspot, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return hotspotWeight(out[i]) > hotspotWeight(out[j])
	})
	return out
}

func hotspotWeight(h models.TalukHotspot) int {
	if h.Critical != 0 {
		return h.Critical
	}
	return h.Pending
}

// BuildKanban picks the highest priority, longest open and first escalated manus
func BuildKanban(manus []models.Manu) models.Kanban {
	var escalated []models.Manu
	for _, m := range manus {
		if len(escalated) == KanbanSize {
			break
		}
		if scoring.LifecycleOf(m) == models.LifecycleEscalated {
			escalated = append(escalated, m)
		}
	}
	return models.Kanban{
		HighPriority: firstN(scoring.SortByPriority(manus), KanbanSize),
		LongOpen:     firstN(scoring.SortByPendingDays(manus), KanbanSize),
		Escalated:    firstN(escalated, KanbanSize),
	}
}

func firstN(manus []models.Manu, n int) []models.Manu {
	if manus == nil {
		return []models.Manu{}
	}
	if len(manus) > n {
		return manus[:n]
	}
	return manus
}

func roundedAverage(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}
