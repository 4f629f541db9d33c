package logger

import (
	"strings"

	"github.com/rs/zerolog"
)

// LogFormat selects how console log lines are rendered: raw JSON for
// machine consumption, or a zerolog console layout with or without color.
type LogFormat int

const (
	FormatJSON LogFormat = iota
	FormatConsole
	FormatText
)

var formatNames = [...]string{"json", "console", "text"}

func (lf LogFormat) String() string {
	if lf < 0 || int(lf) >= len(formatNames) {
		return formatNames[FormatConsole]
	}
	return formatNames[lf]
}

// ParseLogFormat maps a log_format config value onto a LogFormat.
// Unrecognized values fall back to the console format rather than failing;
// the format only affects presentation.
func ParseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}

// LoggerConfig is the fully resolved logger setup consumed by the builder.
// Console output is always on stderr so the console report owns stdout;
// file output rotates via lumberjack using the MaxSizeMB/MaxBackups bounds.
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableConsole bool
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int
}

// DefaultLoggerConfig returns the setup used when the log config section is
// absent: info-level colored console logging, no file output.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:         zerolog.InfoLevel,
		Format:        FormatConsole,
		EnableConsole: true,
		MaxSizeMB:     100,
		MaxBackups:    3,
	}
}
