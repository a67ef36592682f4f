package handlers

import (
	"net/http"
	"time"

	"github.com/Gunal77/web-hackathon/api"
	"github.com/Gunal77/web-hackathon/config"
	"github.com/Gunal77/web-hackathon/databases"
	"github.com/Gunal77/web-hackathon/filters"
	"github.com/Gunal77/web-hackathon/performance"
	"github.com/Gunal77/web-hackathon/prediction"
)

// Performance exported for testing purposes
type Performance struct {
	DB  databases.ManuDatabase
	Now func() time.Time
}

// DepartmentsHandler returns department SLA metrics for the district query
// param; no district covers the whole state
func (p Performance) DepartmentsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := p.DB.Find(ctx, databases.ManuFilter{})
	if err != nil {
		config.ErrorStatus("failed to get manus", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, performance.Department(dbResp, r.URL.Query().Get("district")))
}

// DistrictsHandler returns the ranked district performance table
func (p Performance) DistrictsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := p.DB.Find(ctx, databases.ManuFilter{})
	if err != nil {
		config.ErrorStatus("failed to get manus", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, performance.District(dbResp))
}

// SeasonalHandler returns the seasonal complaint forecasts
func (p Performance) SeasonalHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	def := filters.Default(p.Now())
	from := filters.ParseDateInput(q.Get("from"), def.From)
	to := filters.ParseDateInput(q.Get("to"), def.To)
	writeJSON(w, http.StatusOK, prediction.SeasonalForecasts(q.Get("district"), from, to))
}

// SLAHandler returns the departments likely to miss their SLA
func (p Performance) SLAHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, prediction.DeptSLAPredictions(r.URL.Query().Get("district")))
}

// CriticalHandler returns the districts likely to see critical manus
func (p Performance) CriticalHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, prediction.DistrictCriticalPredictions(r.URL.Query().Get("district")))
}
