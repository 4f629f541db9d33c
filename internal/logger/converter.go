package logger

import (
	"strings"

	"diffanalyzer/internal/config"

	"github.com/rs/zerolog"
)

// ConfigConverter converts application log config into logger configuration
type ConfigConverter struct{}

// NewConfigConverter creates a new config converter
func NewConfigConverter() *ConfigConverter {
	return &ConfigConverter{}
}

// ConvertConfig maps config.LogConfig onto a LoggerConfig, falling back to
// defaults for unset fields.
func (cc *ConfigConverter) ConvertConfig(cfg config.LogConfig) (LoggerConfig, error) {
	loggerConfig := DefaultLoggerConfig()

	if cfg.LogLevel != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
		if err != nil {
			return loggerConfig, err
		}
		loggerConfig.Level = level
	}

	loggerConfig.Format = ParseLogFormat(cfg.LogFormat)

	if cfg.LogFile != "" {
		loggerConfig.EnableFile = true
		loggerConfig.FilePath = cfg.LogFile
	}
	if cfg.MaxLogSizeMB > 0 {
		loggerConfig.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		loggerConfig.MaxBackups = cfg.MaxLogBackups
	}

	return loggerConfig, nil
}
