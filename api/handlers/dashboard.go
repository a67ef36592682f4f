package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Gunal77/web-hackathon/api"
	"github.com/Gunal77/web-hackathon/config"
	"github.com/Gunal77/web-hackathon/dashboard"
	"github.com/Gunal77/web-hackathon/databases"
	"github.com/Gunal77/web-hackathon/filters"
)

// Dashboard exported for testing purposes
type Dashboard struct {
	DB  databases.ManuDatabase
	Now func() time.Time
}

// CollectorHandler returns the collector overview for the district, from, to,
// status, q and preset query params. A preset wins over from and to.
func (d Dashboard) CollectorHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := d.Now()
	f := filters.Default(now)

	if district := strings.TrimSpace(q.Get("district")); district != "" {
		f.District = district
	}
	if preset := q.Get("preset"); preset != "" {
		from, to, err := filters.Preset(strings.ToUpper(preset)).Range(now)
		if err != nil {
			config.ErrorStatus("invalid preset", http.StatusBadRequest, w, err)
			return
		}
		f.From, f.To = from, to
	} else {
		f.From = filters.ParseDateInput(q.Get("from"), f.From)
		f.To = filters.ParseDateInput(q.Get("to"), f.To)
	}
	if f.From.After(f.To) {
		config.ErrorStatus("invalid date range", http.StatusBadRequest, w, errors.New("from is after to"))
		return
	}
	f.Statuses = filters.ParseStatuses(q["status"])
	f.Query = q.Get("q")

	zap.S().Debugw("collector dashboard", "district", f.District, "from", f.From, "to", f.To, "statuses", f.Statuses)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := d.DB.Find(ctx, databases.ManuFilter{})
	if err != nil {
		config.ErrorStatus("failed to get manus", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard.CollectorOverview(dbResp, f))
}

// OfficerHandler returns the taluk officer worklist for district, taluk and view
func (d Dashboard) OfficerHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view, err := dashboard.ParseOfficerView(q.Get("view"))
	if err != nil {
		config.ErrorStatus("invalid view", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := d.DB.Find(ctx, databases.ManuFilter{})
	if err != nil {
		config.ErrorStatus("failed to get manus", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard.OfficerOverview(dbResp, q.Get("district"), q.Get("taluk"), view))
}
