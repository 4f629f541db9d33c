package logger

import (
	"diffanalyzer/internal/config"

	"github.com/rs/zerolog"
)

// New creates a new zerolog logger from application log configuration.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}

// NewVerbose creates a logger with the level forced to debug, used when the
// --verbose flag is set.
func NewVerbose(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().
		WithConfig(cfg).
		WithLevel(zerolog.DebugLevel).
		Build()
}
