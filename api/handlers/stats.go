package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Gunal77/web-hackathon/aggregate"
	"github.com/Gunal77/web-hackathon/api"
	"github.com/Gunal77/web-hackathon/config"
	"github.com/Gunal77/web-hackathon/databases"
	"github.com/Gunal77/web-hackathon/models"
)

// Stats exported for testing purposes
type Stats struct {
	DB databases.ManuDatabase
}

func (s Stats) find(r *http.Request, filter databases.ManuFilter) ([]models.Manu, error) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	return s.DB.Find(ctx, filter)
}

// DistrictStatsHandler returns the per-district rollup with map colours
func (s Stats) DistrictStatsHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := s.find(r, databases.ManuFilter{})
	if err != nil {
		config.ErrorStatus("failed to get manus", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, aggregate.DistrictStats(dbResp))
}

// TalukStatsHandler returns the per-taluk rollup of one district
func (s Stats) TalukStatsHandler(w http.ResponseWriter, r *http.Request) {
	district := mux.Vars(r)["district"]
	if !databases.IsKnownDistrict(district) {
		config.ErrorStatus("unknown district", http.StatusNotFound, w, fmt.Errorf("%q: %w", district, databases.ErrUnknownDistrict))
		return
	}

	dbResp, err := s.find(r, databases.ManuFilter{District: district})
	if err != nil {
		config.ErrorStatus("failed to get manus", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, aggregate.TalukStatsForDistrict(district, dbResp))
}

// CategoryStatsHandler returns risk counts per department, optionally for one district
func (s Stats) CategoryStatsHandler(w http.ResponseWriter, r *http.Request) {
	district := r.URL.Query().Get("district")
	if district == models.AllDistricts {
		district = ""
	}
	dbResp, err := s.find(r, databases.ManuFilter{District: district})
	if err != nil {
		config.ErrorStatus("failed to get manus", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, aggregate.CategoryStats(dbResp))
}

// SentimentHandler returns the sentiment distribution
func (s Stats) SentimentHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := s.find(r, databases.ManuFilter{})
	if err != nil {
		config.ErrorStatus("failed to get manus", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, aggregate.SentimentDistribution(dbResp))
}
