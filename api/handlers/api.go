package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Gunal77/web-hackathon/api"
	"github.com/Gunal77/web-hackathon/config"
	"github.com/Gunal77/web-hackathon/databases"
	"github.com/Gunal77/web-hackathon/models"
)

// App stores the router and the manu store, so it can be reused
type App struct {
	Router  *mux.Router
	DB      databases.ManuDatabase
	Config  config.Config
	Hub     *EventHub
	Metrics *api.Metrics
	Tokens  *api.TokenIssuer
	Now     func() time.Time
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()
	if a.Metrics != nil {
		r.Use(a.Metrics.MetricsMiddleware)
	}

	m := Manu{DB: a.DB}
	d := Dashboard{DB: a.DB, Now: a.now}
	s := Stats{DB: a.DB}
	p := Performance{DB: a.DB, Now: a.now}
	i := Import{Metrics: a.Metrics}
	auth := Auth{Tokens: a.Tokens}

	// healthchex
	r.HandleFunc("/health", api.HealthCheckHandler).Methods("GET")
	if a.Metrics != nil && a.Config.MetricsEnabled {
		r.Handle("/metrics", a.Metrics.Handler()).Methods("GET")
	}

	anyRole := a.Tokens.RequireRoles()
	officer := a.Tokens.RequireRoles(models.RoleTalukOfficer, models.RoleCollector)
	collector := a.Tokens.RequireRoles(models.RoleCollector)

	// browsers pass the token as ?token= on the handshake
	r.Handle("/ws/manus", anyRole(http.HandlerFunc(a.Hub.HandleEventsWebSocket)))

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.Use(api.TimeoutMiddleware(a.Config.RequestTimeout))

	v1.Handle("/auth/login", http.HandlerFunc(auth.LoginHandler)).Methods("POST")

	v1.Handle("/regions/districts", anyRole(http.HandlerFunc(DistrictsHandler))).Methods("GET")
	v1.Handle("/regions/districts/{district}/taluks", anyRole(http.HandlerFunc(TaluksHandler))).Methods("GET")
	v1.Handle("/regions/districts/{district}/center", anyRole(http.HandlerFunc(DistrictCenterHandler))).Methods("GET")

	// /manus/priority must be registered before /manus/{manu_id}
	v1.Handle("/manus/priority", officer(http.HandlerFunc(m.PriorityHandler))).Methods("GET")
	v1.Handle("/manus", anyRole(http.HandlerFunc(m.ManusHandler))).Methods("GET")
	v1.Handle("/manus", a.Tokens.RequireRoles(models.RoleCitizen, models.RoleCollector)(http.HandlerFunc(m.CreateManuHandler))).Methods("POST")
	v1.Handle("/manus/{manu_id}", anyRole(http.HandlerFunc(m.ManuByIDHandler))).Methods("GET")
	v1.Handle("/manus/{manu_id}/status", officer(http.HandlerFunc(m.UpdateStatusHandler))).Methods("PUT")

	v1.Handle("/dashboard/collector", collector(http.HandlerFunc(d.CollectorHandler))).Methods("GET")
	v1.Handle("/dashboard/officer", officer(http.HandlerFunc(d.OfficerHandler))).Methods("GET")

	v1.Handle("/stats/districts", collector(http.HandlerFunc(s.DistrictStatsHandler))).Methods("GET")
	v1.Handle("/stats/districts/{district}/taluks", officer(http.HandlerFunc(s.TalukStatsHandler))).Methods("GET")
	v1.Handle("/stats/categories", collector(http.HandlerFunc(s.CategoryStatsHandler))).Methods("GET")
	v1.Handle("/stats/sentiment", collector(http.HandlerFunc(s.SentimentHandler))).Methods("GET")

	v1.Handle("/performance/departments", collector(http.HandlerFunc(p.DepartmentsHandler))).Methods("GET")
	v1.Handle("/performance/districts", collector(http.HandlerFunc(p.DistrictsHandler))).Methods("GET")
	v1.Handle("/predictions/seasonal", collector(http.HandlerFunc(p.SeasonalHandler))).Methods("GET")
	v1.Handle("/predictions/sla", collector(http.HandlerFunc(p.SLAHandler))).Methods("GET")
	v1.Handle("/predictions/critical", collector(http.HandlerFunc(p.CriticalHandler))).Methods("GET")

	v1.Handle("/imports/count", collector(http.HandlerFunc(i.CountHandler))).Methods("POST")

	return r
}

// Initialize builds the metrics, the event hub, the token issuer and the manu
// store from the config, then sets up the routes
func (a *App) Initialize() error {
	if a.Now == nil {
		a.Now = time.Now
	}
	if a.Metrics == nil {
		a.Metrics = api.NewMetrics()
	}
	a.Hub = NewEventHub(a.Metrics)
	a.Tokens = api.NewTokenIssuer(a.Config.JWTSecret, a.Config.TokenTTL)

	opts := []databases.Option{databases.WithClock(a.Now), databases.WithNotifier(a.Hub)}
	if a.Config.SeedData {
		opts = append(opts, databases.WithSeed())
	}
	a.DB = databases.NewManuDatabase(opts...)

	count, err := a.DB.CountDocuments(context.Background())
	if err != nil {
		zap.S().With(err).Error("failed to count seeded manus")
		return err
	}
	zap.S().Infow("manu store ready", "manus", count, "seeded", a.Config.SeedData)

	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// writeJSON marshals v and writes it with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
