package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunal77/web-hackathon/models"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"CONFIG_PATH", "PORT", "BASE_URL", "APP_ENV", "JWT_SECRET", "TOKEN_TTL",
		"REQUEST_TIMEOUT", "SEED_DATA", "DIGEST_SCHEDULE", "METRICS_ENABLED"} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func TestNew(t *testing.T) {
	clearEnv(t)
	conf, err := New()
	require.NoError(t, err)
	assert.NotEmpty(t, conf)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	conf, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", conf.Port)
	assert.Equal(t, "local", conf.Env)
	assert.Equal(t, DevJWTSecret, conf.JWTSecret)
	assert.Equal(t, 24*time.Hour, conf.TokenTTL)
	assert.Equal(t, 10*time.Second, conf.RequestTimeout)
	assert.True(t, conf.SeedData)
	assert.Equal(t, "0 3 * * *", conf.DigestSchedule)
	assert.True(t, conf.MetricsEnabled)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("TOKEN_TTL", "1h")

	conf, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", conf.Port)
	assert.Equal(t, "production", conf.Env)
	assert.False(t, conf.SeedData)
	assert.Equal(t, time.Hour, conf.TokenTTL)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7070\"\ndigest_schedule: \"*/5 * * * *\"\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	conf, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", conf.Port)
	assert.Equal(t, "*/5 * * * *", conf.DigestSchedule)
	assert.Equal(t, "local", conf.Env)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:           "8080",
			Env:            "local",
			JWTSecret:      DevJWTSecret,
			TokenTTL:       time.Hour,
			RequestTimeout: time.Second,
			DigestSchedule: "0 3 * * *",
		}
	}
	c := valid()
	assert.NoError(t, c.Validate())

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown env", func(c *Config) { c.Env = "staging" }},
		{"short secret outside local", func(c *Config) { c.Env = "production"; c.JWTSecret = "short" }},
		{"empty secret", func(c *Config) { c.JWTSecret = "" }},
		{"bad port", func(c *Config) { c.Port = "http" }},
		{"port out of range", func(c *Config) { c.Port = "70000" }},
		{"zero ttl", func(c *Config) { c.TokenTTL = 0 }},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }},
		{"bad schedule", func(c *Config) { c.DigestSchedule = "every day" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadRejectsProductionWithoutSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	_, err := Load()
	assert.Error(t, err)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	expected, _ := json.Marshal(models.ErrorMessageResponse{Response: models.MessageError{Message: "error it borked", Error: "bad request"}})
	assert.Equal(t, string(expected), rr.Body.String())
}

func TestErrorStatusNilError(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("not found", http.StatusNotFound, rr, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `"Error":""`)
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(1))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(2))
}

func TestSetLoggerSetsLocalLogger(t *testing.T) {
	l, err := setLogger("local")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(0))
}

func TestSetLoggerUnknown(t *testing.T) {
	_, err := setLogger("staging")
	assert.Error(t, err)
}
