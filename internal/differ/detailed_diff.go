package differ

import (
	"os"
	"path"
	"strings"

	"diffanalyzer/internal/config"
	"diffanalyzer/internal/models"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	binaryDiffSummary    = "binary file"
	readErrorDiffSummary = "file read error"
)

// buildDiffInfo computes the detailed difference between the two versions of
// a modified file. Binary files are classified without a line diff; files
// that cannot be read are marked as errors rather than aborting the run.
func (dd *DirectoryDiffer) buildDiffInfo(ossPath, customPath, relPath string) models.DiffInfo {
	if !dd.prober.IsTextFile(ossPath) || !dd.prober.IsTextFile(customPath) {
		return models.DiffInfo{Kind: models.DiffKindBinary, Summary: binaryDiffSummary}
	}

	ossData, err := os.ReadFile(ossPath)
	if err != nil {
		dd.logger.Warn().Err(err).Str("path", ossPath).Msg("Failed to read oss file for diff")
		return models.DiffInfo{Kind: models.DiffKindError, Summary: readErrorDiffSummary}
	}
	customData, err := os.ReadFile(customPath)
	if err != nil {
		dd.logger.Warn().Err(err).Str("path", customPath).Msg("Failed to read custom file for diff")
		return models.DiffInfo{Kind: models.DiffKindError, Summary: readErrorDiffSummary}
	}

	unified := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(ossData)),
		B:        difflib.SplitLines(string(customData)),
		FromFile: "oss/" + path.Base(relPath),
		ToFile:   "custom/" + path.Base(relPath),
		Context:  dd.config.ContextLines,
	}
	diffText, err := difflib.GetUnifiedDiffString(unified)
	if err != nil {
		dd.logger.Warn().Err(err).Str("path", relPath).Msg("Failed to render unified diff")
		return models.DiffInfo{Kind: models.DiffKindError, Summary: readErrorDiffSummary}
	}

	diffLines := splitDiffLines(diffText)
	addedLines, removedLines := countChangedLines(diffLines)

	preview := diffLines
	if len(preview) > dd.config.PreviewLines {
		preview = preview[:dd.config.PreviewLines]
	}

	return models.DiffInfo{
		Kind:         models.DiffKindText,
		AddedLines:   addedLines,
		RemovedLines: removedLines,
		TotalChanges: addedLines + removedLines,
		Preview:      preview,
		Fragments:    inlineFragments(string(ossData), string(customData)),
	}
}

// splitDiffLines splits a rendered unified diff into lines without
// terminators, dropping the empty tail produced by the trailing newline.
func splitDiffLines(diffText string) []string {
	if diffText == "" {
		return nil
	}
	lines := strings.Split(diffText, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// countChangedLines counts inserted and deleted lines in a unified diff,
// excluding the +++/--- file header lines.
func countChangedLines(diffLines []string) (added, removed int) {
	for _, line := range diffLines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			added++
		case strings.HasPrefix(line, "-"):
			removed++
		}
	}
	return added, removed
}

// inlineFragments computes semantic inline diff fragments for HTML preview
// rendering. The total fragment text is capped so a large rewrite does not
// bloat the report.
func inlineFragments(ossText, customText string) []models.DiffFragment {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(ossText, customText, true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	fragments := make([]models.DiffFragment, 0, len(diffs))
	budget := config.DefaultInlineFragmentCap
	for _, diff := range diffs {
		text := diff.Text
		if len(text) > budget {
			text = text[:budget]
		}
		budget -= len(text)

		fragments = append(fragments, models.DiffFragment{
			Op:   models.DiffFragmentOp(diff.Type),
			Text: text,
		})
		if budget <= 0 {
			break
		}
	}
	return fragments
}
