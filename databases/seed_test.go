package databases_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunal77/web-hackathon/databases"
	"github.com/Gunal77/web-hackathon/models"
)

func TestSeedManus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	manus := databases.SeedManus(now)
	require.Len(t, manus, 222)

	perDistrict := map[string]int{}
	for i, m := range manus {
		assert.Equal(t, strconv.Itoa(i+1), m.ID)
		assert.True(t, m.DepartmentCategory.Valid(), m.ID)
		assert.True(t, m.Status.Valid(), m.ID)
		assert.False(t, m.CreatedDate.After(now), m.ID)
		assert.Contains(t, databases.TaluksForDistrict(m.District), m.Taluk)
		perDistrict[m.District]++
	}
	assert.Equal(t, 40, perDistrict["Chennai"])
	assert.Equal(t, 24, perDistrict["Coimbatore"])
	assert.Equal(t, 28, perDistrict["Madurai"])
	assert.Equal(t, 20, perDistrict["Salem"])
	assert.Equal(t, 15, perDistrict["Cuddalore"])
}

func TestSeededDatabase(t *testing.T) {
	clock := newClock()
	db := databases.NewManuDatabase(databases.WithClock(clock.Now), databases.WithSeed())
	ctx := context.Background()

	n, err := db.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(222), n)

	first, err := db.FindOne(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Chennai", first.District)
	assert.Equal(t, "Tondiarpet", first.Taluk)
	assert.Equal(t, models.StatusInProgress, first.Status)
	assert.Equal(t, 10, first.PendingDays)
	assert.Equal(t, models.SentimentSevereDistress, first.Sentiment)
	assert.Equal(t, models.RiskCritical, first.RiskLevel)
	assert.Equal(t, 65, first.PriorityScore)

	created, err := db.InsertOne(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, "223", created.ID)
}

func TestSeededDatabaseKeepsIDsUnique(t *testing.T) {
	db := databases.NewManuDatabase(
		databases.WithClock(newClock().Now),
		databases.WithSeed(),
		databases.WithManus(
			models.Manu{ID: "1", CitizenName: "Override", District: "Erode", Taluk: "Erode", Status: models.StatusSubmitted},
			models.Manu{ID: "900", CitizenName: "First", District: "Erode", Taluk: "Erode", Status: models.StatusSubmitted},
			models.Manu{ID: "900", CitizenName: "Second", District: "Erode", Taluk: "Bhavani", Status: models.StatusSubmitted},
		),
	)
	ctx := context.Background()

	n, err := db.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(223), n)

	all, err := db.Find(ctx, databases.ManuFilter{})
	require.NoError(t, err)
	ids := make(map[string]int)
	for _, m := range all {
		ids[m.ID]++
	}
	for id, count := range ids {
		assert.Equal(t, 1, count, "id %s", id)
	}

	one, err := db.FindOne(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Override", one.CitizenName)

	dup, err := db.FindOne(ctx, "900")
	require.NoError(t, err)
	assert.Equal(t, "First", dup.CitizenName)

	created, err := db.InsertOne(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, "901", created.ID)
}

func TestSeededDatabaseHasSpread(t *testing.T) {
	db := databases.NewManuDatabase(databases.WithClock(newClock().Now), databases.WithSeed())
	manus, err := db.Find(context.Background(), databases.ManuFilter{})
	require.NoError(t, err)

	sentiments := map[models.Sentiment]int{}
	statuses := map[models.ManuStatus]int{}
	for _, m := range manus {
		sentiments[m.Sentiment]++
		statuses[m.Status]++
	}
	for _, s := range models.Sentiments {
		assert.Positive(t, sentiments[s], s)
	}
	for _, s := range models.ManuStatuses {
		assert.Positive(t, statuses[s], s)
	}
}

func TestRegions(t *testing.T) {
	districts := databases.Districts()
	require.Len(t, districts, 38)
	assert.Equal(t, "Ariyalur", districts[0])
	assert.Equal(t, "Kanyakumari", districts[37])

	for _, d := range districts {
		assert.True(t, databases.IsKnownDistrict(d), d)
		assert.NotEmpty(t, databases.TaluksForDistrict(d), d)
		assert.Equal(t, databases.DistrictZoom, databases.DistrictCenter(d).Zoom, d)
	}

	assert.Equal(t, []string{"Attur", "Mettur", "Omalur", "Sangagiri"}, databases.TaluksForDistrict("Salem"))
	assert.Nil(t, databases.TaluksForDistrict("Atlantis"))
	assert.False(t, databases.IsKnownDistrict("Atlantis"))

	chennai := databases.DistrictCenter("Chennai")
	assert.InDelta(t, 13.0827, chennai.Lat, 1e-9)
	assert.InDelta(t, 80.2707, chennai.Lng, 1e-9)
	assert.Equal(t, databases.TamilNaduCenter, databases.DistrictCenter("Atlantis"))
	assert.Equal(t, databases.StateZoom, databases.TamilNaduCenter.Zoom)
}

func TestRegionsReturnsCopies(t *testing.T) {
	taluks := databases.TaluksForDistrict("Salem")
	taluks[0] = "changed"
	assert.Equal(t, "Attur", databases.TaluksForDistrict("Salem")[0])

	districts := databases.Districts()
	districts[0] = "changed"
	assert.Equal(t, "Ariyalur", databases.Districts()[0])
}
