package config

// ReporterConfig defines configuration for report generation.
// OutputFile is optional; when empty a timestamped filename is derived from
// the chosen format.
type ReporterConfig struct {
	Format     string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,reportformat"`
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		Format: DefaultReportFormat,
	}
}
