package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Gunal77/web-hackathon/api"
	"github.com/Gunal77/web-hackathon/config"
	"github.com/Gunal77/web-hackathon/models"
)

// Auth exported for testing purposes
type Auth struct {
	Tokens *api.TokenIssuer
}

// LoginHandler issues a role token for the demo persona picker. There is no
// password; the role and display name are taken as given.
func (a Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	req.Role = models.Role(strings.ToUpper(strings.TrimSpace(string(req.Role))))

	token, err := a.Tokens.Issue(req.Role, req.Name)
	if err != nil {
		if errors.Is(err, api.ErrInvalidRole) || errors.Is(err, api.ErrMissingName) {
			config.ErrorStatus("invalid login", http.StatusBadRequest, w, err)
			return
		}
		config.ErrorStatus("failed to issue token", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("login", "role", req.Role)
	writeJSON(w, http.StatusOK, models.LoginResponse{Token: token, Role: req.Role, Name: strings.TrimSpace(req.Name)})
}
