package reporter

import (
	"fmt"
	"os"
	"strings"
	"time"

	"diffanalyzer/internal/common"
	"diffanalyzer/internal/config"
	"diffanalyzer/internal/models"

	"github.com/rs/zerolog"
)

// ReportFormat identifies one of the supported report renderers.
type ReportFormat string

const (
	FormatConsole ReportFormat = "console"
	FormatJSON    ReportFormat = "json"
	FormatCSV     ReportFormat = "csv"
	FormatHTML    ReportFormat = "html"
)

// ParseFormat maps a format string onto a ReportFormat.
func ParseFormat(s string) (ReportFormat, error) {
	switch ReportFormat(strings.ToLower(s)) {
	case FormatConsole:
		return FormatConsole, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", common.NewError("unknown report format '%s' (expected console, json, csv or html)", s)
	}
}

// extension returns the artifact file extension for the format.
func (rf ReportFormat) extension() string {
	return string(rf)
}

// Reporter turns an AnalysisResult into exactly one output artifact per
// invocation: console text on stdout or a JSON/CSV/HTML file.
type Reporter struct {
	categories []string
	logger     zerolog.Logger
	console    *ConsoleReporter
	json       *JSONReporter
	csv        *CSVReporter
	html       *HTMLReporter
	now        func() time.Time
}

// NewReporter creates a reporter. categories is the full category list used
// to produce zero-valued summary entries.
func NewReporter(categories []string, logger zerolog.Logger) (*Reporter, error) {
	htmlReporter, err := NewHTMLReporter(categories)
	if err != nil {
		return nil, common.WrapError(err, "failed to initialize HTML reporter")
	}

	return &Reporter{
		categories: categories,
		logger:     logger.With().Str("component", "Reporter").Logger(),
		console:    NewConsoleReporter(),
		json:       NewJSONReporter(),
		csv:        NewCSVReporter(),
		html:       htmlReporter,
		now:        time.Now,
	}, nil
}

// Generate renders result in the requested format. For the console format the
// report goes to stdout and the returned path is empty; for file formats the
// artifact path is returned, derived from the timestamp when outputPath is
// empty.
func (r *Reporter) Generate(result *models.AnalysisResult, format ReportFormat, outputPath string) (string, error) {
	if format == FormatConsole {
		return "", r.console.Render(os.Stdout, result)
	}

	if outputPath == "" {
		outputPath = r.DefaultOutputPath(format)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return "", common.WrapErrorf(err, "failed to create report file '%s'", outputPath)
	}
	defer f.Close()

	switch format {
	case FormatJSON:
		err = r.json.Render(f, result)
	case FormatCSV:
		err = r.csv.Render(f, result)
	case FormatHTML:
		err = r.html.Render(f, result)
	default:
		err = common.NewError("unknown report format '%s'", format)
	}
	if err != nil {
		return "", common.WrapErrorf(err, "failed to render %s report", format)
	}

	r.logger.Info().Str("format", string(format)).Str("path", outputPath).Msg("Report generated")
	return outputPath, nil
}

// DefaultOutputPath builds the timestamped default artifact filename.
func (r *Reporter) DefaultOutputPath(format ReportFormat) string {
	return fmt.Sprintf("%s_%s.%s", config.DefaultReportFilenamePrefix, r.now().Format("20060102_150405"), format.extension())
}
