package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Gunal77/web-hackathon/api"
	"github.com/Gunal77/web-hackathon/config"
	"github.com/Gunal77/web-hackathon/dashboard"
	"github.com/Gunal77/web-hackathon/databases"
	"github.com/Gunal77/web-hackathon/filters"
	"github.com/Gunal77/web-hackathon/models"
	"github.com/Gunal77/web-hackathon/scoring"
)

// DefaultPriorityLimit caps the priority list when no limit is given
const DefaultPriorityLimit = 20

// Sort orders accepted by ManusHandler
const (
	SortPriority = "priority"
	SortPending  = "pending"
)

// Manu exported for testing purposes
type Manu struct {
	DB databases.ManuDatabase
}

// ManusHandler returns the manus matching the optional id, district, taluk
// and q query params, sorted by sort=priority|pending
func (m Manu) ManusHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sortBy := q.Get("sort")
	if sortBy != "" && sortBy != SortPriority && sortBy != SortPending {
		config.ErrorStatus("invalid sort", http.StatusBadRequest, w, errors.New("sort must be priority or pending"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := m.DB.Find(ctx, databases.ManuFilter{})
	if err != nil {
		config.ErrorStatus("failed to get manus", http.StatusInternalServerError, w, err)
		return
	}

	list := dashboard.CitizenList(dbResp, q.Get("id"), q.Get("district"), q.Get("taluk"))
	if query := q.Get("q"); query != "" {
		matched := make([]models.Manu, 0, len(list))
		for _, item := range list {
			if filters.MatchesQuery(item, query) {
				matched = append(matched, item)
			}
		}
		list = matched
	}

	switch sortBy {
	case SortPriority:
		list = scoring.SortByPriority(list)
	case SortPending:
		list = scoring.SortByPendingDays(list)
	}
	writeJSON(w, http.StatusOK, scoring.Details(list))
}

// ManuByIDHandler returns one manu with its lifecycle label and critical type
func (m Manu) ManuByIDHandler(w http.ResponseWriter, r *http.Request) {
	manuID := mux.Vars(r)["manu_id"]

	zap.S().Debugf("manu_id: %v", manuID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := m.DB.FindOne(ctx, manuID)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			config.ErrorStatus("failed to get manu by ID", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get manu by ID", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, scoring.Detail(*dbResp))
}

// CreateManuHandler files a new manu from a citizen submission
func (m Manu) CreateManuHandler(w http.ResponseWriter, r *http.Request) {
	var input models.NewManuInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	created, err := m.DB.InsertOne(ctx, input)
	if err != nil {
		if isValidationError(err) {
			config.ErrorStatus("invalid manu", http.StatusBadRequest, w, err)
			return
		}
		config.ErrorStatus("failed to create manu", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("manu created",
		"id", created.ID,
		"district", created.District,
		"taluk", created.Taluk,
		"riskLevel", created.RiskLevel,
		"requestId", api.RequestIDFromContext(r.Context()))
	writeJSON(w, http.StatusCreated, scoring.Detail(*created))
}

// UpdateStatusHandler moves a manu to a new workflow status
func (m Manu) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	manuID := mux.Vars(r)["manu_id"]

	var input models.UpdateStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	updated, err := m.DB.UpdateStatus(ctx, manuID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, databases.ErrInvalidStatus):
			config.ErrorStatus("invalid status", http.StatusBadRequest, w, err)
		case errors.Is(err, databases.ErrNotFound):
			config.ErrorStatus("failed to update manu status", http.StatusNotFound, w, err)
		default:
			config.ErrorStatus("failed to update manu status", http.StatusInternalServerError, w, err)
		}
		return
	}

	by := ""
	if c := api.ClaimsFromContext(r.Context()); c != nil {
		by = c.Name
	}
	zap.S().Infow("manu status updated", "id", updated.ID, "status", updated.Status, "by", by)
	writeJSON(w, http.StatusOK, scoring.Detail(*updated))
}

// PriorityHandler returns open manus ordered by priority score, capped by limit
func (m Manu) PriorityHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := DefaultPriorityLimit
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			config.ErrorStatus("invalid limit", http.StatusBadRequest, w, errors.New("limit must be a positive integer"))
			return
		}
		limit = n
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := m.DB.Find(ctx, databases.ManuFilter{
		District: q.Get("district"),
		Taluk:    q.Get("taluk"),
		Statuses: []models.ManuStatus{models.StatusSubmitted, models.StatusInProgress},
	})
	if err != nil {
		config.ErrorStatus("failed to get manus", http.StatusInternalServerError, w, err)
		return
	}

	sorted := scoring.SortByPriority(dbResp)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	writeJSON(w, http.StatusOK, scoring.Details(sorted))
}

func isValidationError(err error) bool {
	return errors.Is(err, databases.ErrMissingField) ||
		errors.Is(err, databases.ErrInvalidDepartment) ||
		errors.Is(err, databases.ErrInvalidTaluk)
}
