package reporter

import (
	"html/template"
	"time"

	"diffanalyzer/internal/models"
)

// GetReportTemplateFunctions returns the function map for the HTML report
// template.
func GetReportTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"formatTime": func(t time.Time) string {
			if t.IsZero() {
				return "N/A"
			}
			return t.Format(time.RFC3339)
		},
		"describeChanges": describeChanges,
		"fragmentClass": func(op models.DiffFragmentOp) string {
			switch op {
			case models.FragmentInsert:
				return "frag-ins"
			case models.FragmentDelete:
				return "frag-del"
			default:
				return "frag-eq"
			}
		},
	}
}
