package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Gunal77/web-hackathon/logging"
)

// DevJWTSecret signs role tokens on local runs that set no JWT_SECRET
const DevJWTSecret = "local-development-secret-do-not-deploy"

// MinJWTSecretLength is enforced outside local runs
const MinJWTSecretLength = 32

// Config holds the project config values
type Config struct {
	Port           string        `yaml:"port"            env:"PORT"            env-default:"8080"`
	BaseURL        string        `yaml:"base_url"        env:"BASE_URL"`
	Env            string        `yaml:"app_env"         env:"APP_ENV"         env-default:"local"`
	JWTSecret      string        `yaml:"jwt_secret"      env:"JWT_SECRET"`
	TokenTTL       time.Duration `yaml:"token_ttl"       env:"TOKEN_TTL"       env-default:"24h"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"10s"`
	SeedData       bool          `yaml:"seed_data"       env:"SEED_DATA"       env-default:"true"`
	DigestSchedule string        `yaml:"digest_schedule" env:"DIGEST_SCHEDULE" env-default:"0 3 * * *"`
	MetricsEnabled bool          `yaml:"metrics_enabled" env:"METRICS_ENABLED" env-default:"true"`
}

// Load reads configuration from an optional YAML file named by CONFIG_PATH,
// then environment variables, then env-default tags.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if cfg.JWTSecret == "" && cfg.Env == logging.EnvLocal {
		cfg.JWTSecret = DevJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that env-default tags cannot express
func (c *Config) Validate() error {
	switch c.Env {
	case logging.EnvLocal, logging.EnvDevelopment, logging.EnvProduction:
	default:
		return fmt.Errorf("app_env must be local, development or production (got %q)", c.Env)
	}

	if c.Env != logging.EnvLocal && len(c.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("jwt_secret must be at least %d characters outside local (got %d)", MinJWTSecretLength, len(c.JWTSecret))
	}
	if c.JWTSecret == "" {
		return errors.New("jwt_secret must be set")
	}

	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535 (got %q)", c.Port)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be > 0 (got %s)", c.TokenTTL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %s)", c.RequestTimeout)
	}
	if _, err := cron.ParseStandard(c.DigestSchedule); err != nil {
		return fmt.Errorf("digest_schedule: %w", err)
	}
	return nil
}

// New loads the config and installs the environment's logger as the zap global
func New() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	logger, err := setLogger(cfg.Env)
	if err != nil {
		return nil, err
	}
	_ = zap.ReplaceGlobals(logger)

	zap.S().Infow("config loaded",
		"env", cfg.Env,
		"port", cfg.Port,
		"seed_data", cfg.SeedData,
		"metrics_enabled", cfg.MetricsEnabled,
		"digest_schedule", cfg.DigestSchedule)
	return cfg, nil
}
