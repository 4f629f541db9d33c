package config

// Default values for logging configuration
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)

// Default values for diff configuration
const (
	DefaultDiffContextLines  = 3
	DefaultDiffPreviewLines  = 20
	DefaultTextSampleSize    = 1024
	DefaultMaxProbeWorkers   = 8
	DefaultInlineFragmentCap = 4096
)

// Default values for reporter configuration
const (
	DefaultReportFormat         = "console"
	DefaultReportFilenamePrefix = "diff_report"
)

// Default values for the telemetry generator
const (
	DefaultGeneratorOutputFile      = "autonomous_driving_test.jsonl"
	DefaultGeneratorDurationSeconds = 60
	DefaultGeneratorFrequencyHz     = 10
)
