package reporter

import (
	"embed"
	"html/template"
	"io"
	"time"

	"diffanalyzer/internal/common"
	"diffanalyzer/internal/models"
)

//go:embed templates/diff_report.html.tmpl
var templateFS embed.FS

// htmlReportData is the root object handed to the report template.
type htmlReportData struct {
	Result      *models.AnalysisResult
	Summary     models.Summary
	GeneratedAt time.Time
}

// HTMLReporter renders a single self-contained interactive page: summary
// cards, a client-side filterable file list and inline previews for modified
// text files. Styles and script are inlined so the page has no network
// dependency.
type HTMLReporter struct {
	template   *template.Template
	categories []string
}

// NewHTMLReporter creates a new HTML reporter
func NewHTMLReporter(categories []string) (*HTMLReporter, error) {
	tmpl, err := template.New("").Funcs(GetReportTemplateFunctions()).ParseFS(templateFS, "templates/diff_report.html.tmpl")
	if err != nil {
		return nil, common.WrapError(err, "failed to parse HTML report template")
	}

	return &HTMLReporter{
		template:   tmpl,
		categories: categories,
	}, nil
}

// Render writes the complete HTML document to w.
func (hr *HTMLReporter) Render(w io.Writer, result *models.AnalysisResult) error {
	data := htmlReportData{
		Result:      result,
		Summary:     models.BuildSummary(result, hr.categories),
		GeneratedAt: time.Now(),
	}
	return hr.template.ExecuteTemplate(w, "diff_report.html.tmpl", data)
}
