package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger. Production environments get JSON output,
// everything else gets the console encoder.
func New(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// NewQuiet builds a logger that only reports warnings and errors, for CLI
// runs where stdout carries the result.
func NewQuiet() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
