package api

import (
	"encoding/json"
	"net/http"

	"github.com/Gunal77/web-hackathon/models"
)

// HealthCheckHandler reports that the process is serving
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	b, _ := json.Marshal(models.HealthCheckResponse{Alive: true})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
