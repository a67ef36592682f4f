package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Gunal77/web-hackathon/models"
)

// Token errors
var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidRole  = errors.New("invalid role")
	ErrMissingName  = errors.New("missing name")
)

const tokenIssuer = "manu-api"

// Claims carry the demo role selected at login
type Claims struct {
	Role models.Role `json:"role"`
	Name string      `json:"name"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies role tokens
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns an HS256 issuer for the given secret and lifetime
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the role and display name
func (ti *TokenIssuer) Issue(role models.Role, name string) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("%q: %w", role, ErrInvalidRole)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrMissingName
	}

	now := ti.now()
	claims := Claims{
		Role: role,
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
}

// Parse verifies a token and returns its claims
func (ti *TokenIssuer) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return ti.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(ti.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, ErrInvalidRole)
	}
	return claims, nil
}

// WebsocketTokenParam carries the token on websocket handshakes, where
// browsers cannot set an Authorization header
const WebsocketTokenParam = "token"

func bearerToken(r *http.Request) (string, error) {
	if websocket.IsWebSocketUpgrade(r) && r.Header.Get("Authorization") == "" {
		if token := strings.TrimSpace(r.URL.Query().Get(WebsocketTokenParam)); token != "" {
			return token, nil
		}
	}
	h := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

// RequireRoles admits requests carrying a valid token for one of roles. With
// no roles any valid token is accepted.
func (ti *TokenIssuer) RequireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				unauthorized(w, r, http.StatusUnauthorized, err)
				return
			}
			claims, err := ti.Parse(token)
			if err != nil {
				unauthorized(w, r, http.StatusUnauthorized, err)
				return
			}
			if len(roles) > 0 && !hasRole(roles, claims.Role) {
				unauthorized(w, r, http.StatusForbidden, fmt.Errorf("role %s not permitted", claims.Role))
				return
			}
			zap.S().Debugw("role authenticated", "role", claims.Role, "name", claims.Name)
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func hasRole(roles []models.Role, role models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func unauthorized(w http.ResponseWriter, r *http.Request, status int, err error) {
	zap.S().Errorw("unauthorized",
		"url", r.URL.String(),
		"status", status,
		"error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status == http.StatusForbidden {
		_, _ = w.Write([]byte(`{"error": "forbidden"}`))
		return
	}
	_, _ = w.Write([]byte(`{"error": "unauthorized"}`))
}
