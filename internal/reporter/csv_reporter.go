package reporter

import (
	"encoding/csv"
	"io"
	"strconv"

	"diffanalyzer/internal/models"
)

// csvHeader is the fixed column layout of the CSV artifact.
var csvHeader = []string{"Type", "Path", "Category", "Size", "Lines", "Changes"}

// CSVReporter renders a flat table with one row per entry across all three
// groups. Columns that do not apply to a row are left blank: Changes for
// added/removed rows, Lines for binary files.
type CSVReporter struct{}

// NewCSVReporter creates a new CSV reporter
func NewCSVReporter() *CSVReporter {
	return &CSVReporter{}
}

// Render writes the header row followed by one row per entry.
func (cr *CSVReporter) Render(w io.Writer, result *models.AnalysisResult) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, entry := range result.Added {
		if err := writer.Write(statRow("Added", entry)); err != nil {
			return err
		}
	}
	for _, entry := range result.Removed {
		if err := writer.Write(statRow("Removed", entry)); err != nil {
			return err
		}
	}
	for _, entry := range result.Modified {
		row := []string{
			"Modified",
			entry.Path,
			entry.CustomStats.Category,
			strconv.FormatInt(entry.CustomStats.Size, 10),
			linesColumn(entry.CustomStats),
			changesColumn(entry.DiffInfo),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// statRow builds the row for an added or removed entry. Changes is always
// blank for these rows.
func statRow(changeType string, entry models.FileEntry) []string {
	return []string{
		changeType,
		entry.Path,
		entry.Stats.Category,
		strconv.FormatInt(entry.Stats.Size, 10),
		linesColumn(entry.Stats),
		"",
	}
}

// linesColumn renders the line count, blank for binary files.
func linesColumn(record models.FileRecord) string {
	if !record.IsText {
		return ""
	}
	return strconv.Itoa(record.Lines)
}

// changesColumn renders the total change count, blank unless a text diff was
// computed.
func changesColumn(info models.DiffInfo) string {
	if info.Kind != models.DiffKindText {
		return ""
	}
	return strconv.Itoa(info.TotalChanges)
}
