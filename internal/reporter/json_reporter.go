package reporter

import (
	"encoding/json"
	"io"

	"diffanalyzer/internal/models"
)

// JSONReporter serializes the full AnalysisResult as pretty-printed JSON.
type JSONReporter struct{}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// Render writes the indented JSON document to w. HTML escaping is disabled so
// non-ASCII text and diff preview lines survive verbatim.
func (jr *JSONReporter) Render(w io.Writer, result *models.AnalysisResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(result)
}
