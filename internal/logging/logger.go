package logging

import (
	"go.uber.org/zap"
)

// NewNamed builds a zap logger for the given environment and names it after
// the service. Development gets a human-readable console encoder, everything
// else structured JSON.
func NewNamed(env, service string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Named(service), nil
}
