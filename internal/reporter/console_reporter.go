package reporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"diffanalyzer/internal/models"

	"github.com/gookit/color"
)

// ConsoleReporter renders a human-readable multi-section text report.
type ConsoleReporter struct{}

// NewConsoleReporter creates a new console reporter
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{}
}

// Render writes the report to w. Section headers are emitted even for empty
// groups. The input result is never mutated.
func (cr *ConsoleReporter) Render(w io.Writer, result *models.AnalysisResult) error {
	meta := result.Metadata

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, color.Bold.Render("Directory Diff Report"))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintf(w, "OSS Dir:            %s\n", meta.OssDir)
	fmt.Fprintf(w, "Custom Dir:         %s\n", meta.CustomDir)
	fmt.Fprintf(w, "Analysis Time:      %s\n", meta.AnalysisTime.Format(time.RFC3339))
	fmt.Fprintf(w, "OSS Total Files:    %d\n", meta.TotalFilesOss)
	fmt.Fprintf(w, "Custom Total Files: %d\n", meta.TotalFilesCustom)

	fmt.Fprintf(w, "\n%s\n", color.Green.Sprintf("Added files: %d", len(result.Added)))
	for _, entry := range result.Added {
		fmt.Fprintf(w, "  + %s [%s] (%d bytes)\n", entry.Path, entry.Stats.Category, entry.Stats.Size)
	}

	fmt.Fprintf(w, "\n%s\n", color.Red.Sprintf("Removed files: %d", len(result.Removed)))
	for _, entry := range result.Removed {
		fmt.Fprintf(w, "  - %s [%s] (%d bytes)\n", entry.Path, entry.Stats.Category, entry.Stats.Size)
	}

	fmt.Fprintf(w, "\n%s\n", color.Yellow.Sprintf("Modified files: %d", len(result.Modified)))
	for _, entry := range result.Modified {
		fmt.Fprintf(w, "  M %s [%s] (%s)\n", entry.Path, entry.CustomStats.Category, describeChanges(entry.DiffInfo))
	}

	return nil
}

// describeChanges renders the change count for one modified entry.
func describeChanges(info models.DiffInfo) string {
	switch info.Kind {
	case models.DiffKindText:
		return fmt.Sprintf("%d changes", info.TotalChanges)
	case models.DiffKindBinary:
		return "binary"
	default:
		return "read error"
	}
}
