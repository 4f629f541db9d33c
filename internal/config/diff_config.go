package config

// DiffConfig defines configuration for the diff engine.
type DiffConfig struct {
	ContextLines    int `json:"context_lines,omitempty" yaml:"context_lines,omitempty" validate:"min=0"`
	PreviewLines    int `json:"preview_lines,omitempty" yaml:"preview_lines,omitempty" validate:"min=0"`
	TextSampleSize  int `json:"text_sample_size,omitempty" yaml:"text_sample_size,omitempty" validate:"min=1"`
	MaxProbeWorkers int `json:"max_probe_workers,omitempty" yaml:"max_probe_workers,omitempty" validate:"min=1"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		ContextLines:    DefaultDiffContextLines,
		PreviewLines:    DefaultDiffPreviewLines,
		TextSampleSize:  DefaultTextSampleSize,
		MaxProbeWorkers: DefaultMaxProbeWorkers,
	}
}
