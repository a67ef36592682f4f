package dashboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunal77/web-hackathon/dashboard"
	"github.com/Gunal77/web-hackathon/filters"
	"github.com/Gunal77/web-hackathon/models"
)

var now = time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

func manu(id, district, taluk string, dept models.DepartmentCategory, status models.ManuStatus,
	sentiment models.Sentiment, risk models.RiskLevel, score, pendingDays, ageDays int) models.Manu {
	return models.Manu{
		ID:                 id,
		CitizenName:        "Citizen " + id,
		District:           district,
		Taluk:              taluk,
		DepartmentCategory: dept,
		Title:              "Petition " + id,
		DescriptionText:    "Petition text " + id,
		Sentiment:          sentiment,
		RiskLevel:          risk,
		PriorityScore:      score,
		Status:             status,
		PendingDays:        pendingDays,
		CreatedDate:        now.AddDate(0, 0, -ageDays),
	}
}

func fixture() []models.Manu {
	m1 := manu("1", "Chennai", "Egmore", models.DepartmentRoads, models.StatusSubmitted, models.SentimentSevereDistress, models.RiskCritical, 53, 2, 2)
	m1.DescriptionText = "I feel suicidal after losing my land"
	return []models.Manu{
		m1,
		manu("2", "Chennai", "Egmore", models.DepartmentWaterSupply, models.StatusInProgress, models.SentimentNegative, models.RiskHigh, 48, 12, 12),
		manu("3", "Chennai", "Guindy", models.DepartmentRoads, models.StatusResolved, models.SentimentPositive, models.RiskLow, 0, 5, 20),
		manu("4", "Salem", "Attur", models.DepartmentHealth, models.StatusSubmitted, models.SentimentNeutral, models.RiskLow, 14, 9, 9),
		manu("5", "Salem", "Attur", models.DepartmentHealth, models.StatusResolved, models.SentimentNegative, models.RiskLow, 12, 8, 25),
		manu("6", "Chennai", "Egmore", models.DepartmentRoads, models.StatusSubmitted, models.SentimentSevereDistress, models.RiskCritical, 100, 45, 45),
		manu("7", "Salem", "Attur", models.DepartmentRevenue, models.StatusSubmitted, models.SentimentPositive, models.RiskLow, 75, 50, 50),
		manu("8", "Chennai", "Egmore", models.DepartmentRoads, models.StatusSubmitted, models.SentimentNegative, models.RiskHigh, 100, 70, 70),
	}
}

func ids(manus []models.Manu) []string {
	out := make([]string, 0, len(manus))
	for _, m := range manus {
		out = append(out, m.ID)
	}
	return out
}

func TestCollectorOverview(t *testing.T) {
	got := dashboard.CollectorOverview(fixture(), filters.Default(now))

	assert.Equal(t, models.CountWithChange{
		Count:    5,
		Previous: 2,
		Change:   models.PercentChange{Value: "+150.0% vs prev", Trend: models.TrendUp},
	}, got.Total)
	assert.Equal(t, models.CountWithChange{
		Count:    1,
		Previous: 1,
		Change:   models.PercentChange{Value: "+0.0% vs prev", Trend: models.TrendFlat},
	}, got.Critical)

	require.Len(t, got.Departments, 3)
	roads := got.Departments[0]
	assert.Equal(t, models.DepartmentRoads, roads.Department)
	assert.Equal(t, 2, roads.Total)
	assert.Equal(t, 1, roads.StatusCounts[models.LifecycleNew])
	assert.Equal(t, 1, roads.StatusCounts[models.LifecycleCompleted])
	assert.Equal(t, 0, roads.StatusCounts[models.LifecycleEscalated])
	assert.Len(t, roads.StatusCounts, len(models.LifecycleStatuses))
	assert.Equal(t, 1, roads.CompletedCount)
	assert.Equal(t, 5, roads.AvgClosureDays)
	assert.Equal(t, []string{"1", "3"}, ids(roads.TopPriorityManus))

	assert.Equal(t, models.DepartmentWaterSupply, got.Departments[1].Department)
	assert.Equal(t, 0, got.Departments[1].AvgClosureDays)
	health := got.Departments[2]
	assert.Equal(t, 1, health.StatusCounts[models.LifecyclePendingWithReason])
	assert.Equal(t, 8, health.AvgClosureDays)

	assert.Equal(t, []models.TalukHotspot{
		{District: "Chennai", Taluk: "Egmore", Total: 2, Pending: 1, Escalated: 1, Critical: 1},
		{District: "Salem", Taluk: "Attur", Total: 2, Pending: 1},
		{District: "Chennai", Taluk: "Guindy", Total: 1},
	}, got.Taluks)

	assert.Equal(t, []string{"1", "2", "4", "5"}, ids(got.Kanban.HighPriority))
	assert.Equal(t, []string{"2", "4", "5", "3"}, ids(got.Kanban.LongOpen))
	assert.Equal(t, []string{"2"}, ids(got.Kanban.Escalated))

	require.Len(t, got.CriticalPetitions, 1)
	crit := got.CriticalPetitions[0]
	assert.Equal(t, "1", crit.ID)
	assert.Equal(t, models.LifecycleNew, crit.LifecycleStatus)
	require.NotNil(t, crit.CriticalSentimentType)
	assert.Equal(t, models.CriticalSuicideRisk, *crit.CriticalSentimentType)
}

func TestCollectorOverviewDistrict(t *testing.T) {
	f := filters.Default(now)
	f.District = "Salem"
	got := dashboard.CollectorOverview(fixture(), f)

	assert.Equal(t, 2, got.Total.Count)
	assert.Equal(t, 1, got.Total.Previous)
	assert.Equal(t, "+100.0% vs prev", got.Total.Change.Value)
	assert.Equal(t, models.PercentChange{Value: "0% vs prev", Trend: models.TrendFlat}, got.Critical.Change)
	assert.Empty(t, got.CriticalPetitions)
	assert.Empty(t, got.Kanban.Escalated)
	assert.NotNil(t, got.Kanban.Escalated)
}

func TestCollectorOverviewPreviousIgnoresStatusFilter(t *testing.T) {
	f := filters.Default(now)
	f.Statuses = []models.LifecycleStatus{models.LifecycleCompleted}
	got := dashboard.CollectorOverview(fixture(), f)

	assert.Equal(t, 2, got.Total.Count)
	assert.Equal(t, 2, got.Total.Previous)
	assert.Equal(t, models.TrendFlat, got.Total.Change.Trend)
}

func TestOfficerOverview(t *testing.T) {
	got := dashboard.OfficerOverview(fixture(), "Chennai", "Egmore", models.OfficerViewHighCritical)

	assert.Equal(t, models.OfficerViewHighCritical, got.View)
	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 4, got.HighAndCritical)
	assert.Equal(t, 2, got.SevereDistressCount)
	assert.Equal(t, 2, got.BacklogCount)
	assert.Equal(t, map[models.RiskLevel]int{
		models.RiskLow:      0,
		models.RiskModerate: 0,
		models.RiskHigh:     2,
		models.RiskCritical: 2,
	}, got.RiskLevelCounts)

	var listed []string
	for _, d := range got.Manus {
		listed = append(listed, d.ID)
	}
	assert.Equal(t, []string{"6", "8", "1", "2"}, listed)

	backlog := dashboard.OfficerOverview(fixture(), "Chennai", "Egmore", models.OfficerViewBacklog)
	require.Len(t, backlog.Manus, 2)
	assert.Equal(t, "6", backlog.Manus[0].ID)
	assert.Equal(t, "8", backlog.Manus[1].ID)

	severe := dashboard.OfficerOverview(fixture(), "Chennai", "Egmore", models.OfficerViewSevereDistress)
	assert.Len(t, severe.Manus, 2)
}

func TestOfficerOverviewDefaults(t *testing.T) {
	got := dashboard.OfficerOverview(fixture(), "", "", "")
	assert.Equal(t, "Chennai", got.District)
	assert.Equal(t, "Egmore", got.Taluk)
	assert.Equal(t, models.OfficerViewAll, got.View)
	assert.Len(t, got.Manus, 4)

	empty := dashboard.OfficerOverview(nil, "Salem", "Omalur", models.OfficerViewAll)
	assert.Equal(t, 0, empty.Total)
	assert.Empty(t, empty.Manus)
}

func TestParseOfficerView(t *testing.T) {
	v, err := dashboard.ParseOfficerView("")
	require.NoError(t, err)
	assert.Equal(t, models.OfficerViewAll, v)

	v, err = dashboard.ParseOfficerView("backlog")
	require.NoError(t, err)
	assert.Equal(t, models.OfficerViewBacklog, v)

	_, err = dashboard.ParseOfficerView("OVERDUE")
	assert.ErrorIs(t, err, dashboard.ErrUnknownView)
}

func TestCitizenList(t *testing.T) {
	all := fixture()
	assert.Equal(t, []string{"1"}, ids(dashboard.CitizenList(all, " 1 ", "", "")))
	assert.Equal(t, []string{"4", "5", "7"}, ids(dashboard.CitizenList(all, "", "Salem", "")))
	assert.Equal(t, []string{"3"}, ids(dashboard.CitizenList(all, "", "Chennai", "Guindy")))
	assert.Len(t, dashboard.CitizenList(all, "", "", ""), len(all))
	assert.Empty(t, dashboard.CitizenList(all, "99", "", ""))
}
