package config

// GeneratorConfig defines configuration for the telemetry data generator.
type GeneratorConfig struct {
	OutputFile      string `json:"output_file,omitempty" yaml:"output_file,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty" yaml:"duration_seconds,omitempty" validate:"min=1"`
	FrequencyHz     int    `json:"frequency_hz,omitempty" yaml:"frequency_hz,omitempty" validate:"min=1"`
}

// NewDefaultGeneratorConfig creates default generator configuration
func NewDefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputFile:      DefaultGeneratorOutputFile,
		DurationSeconds: DefaultGeneratorDurationSeconds,
		FrequencyHz:     DefaultGeneratorFrequencyHz,
	}
}
