package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory creates log writers based on configuration
type WriterFactory struct{}

// NewWriterFactory creates a new writer factory
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{}
}

// CreateConsoleWriter creates a stderr writer in the requested format.
// Logs go to stderr so that the console report on stdout stays clean.
func (wf *WriterFactory) CreateConsoleWriter(format LogFormat) io.Writer {
	switch format {
	case FormatJSON:
		return os.Stderr
	case FormatText:
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	default:
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}
}

// CreateFileWriter creates a rotating file writer
func (wf *WriterFactory) CreateFileWriter(cfg LoggerConfig) io.Writer {
	return &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}
}
