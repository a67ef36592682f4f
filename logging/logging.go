package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// Environments understood by New
const (
	EnvLocal       = "local"
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// New creates a zap logger for the given environment. Local runs log
// everything in the compact example format.
func New(env string) (*zap.Logger, error) {
	switch env {
	case EnvProduction:
		return zap.NewProduction()
	case EnvDevelopment:
		return zap.NewDevelopment()
	case EnvLocal, "":
		return zap.NewExample(), nil
	default:
		return nil, fmt.Errorf("unknown environment %q", env)
	}
}
