package models

import "time"

// AnalysisMetadata captures run-level information about one analysis.
type AnalysisMetadata struct {
	OssDir           string    `json:"oss_dir"`
	CustomDir        string    `json:"custom_dir"`
	AnalysisTime     time.Time `json:"analysis_time"`
	TotalFilesOss    int       `json:"total_files_oss"`
	TotalFilesCustom int       `json:"total_files_custom"`
}

// AnalysisResult is the complete outcome of comparing two directory trees.
// It is built once per run and read-only afterward; renderers must not
// mutate it.
type AnalysisResult struct {
	Added    []FileEntry      `json:"added"`
	Removed  []FileEntry      `json:"removed"`
	Modified []ModifiedEntry  `json:"modified"`
	Metadata AnalysisMetadata `json:"metadata"`
}

// TotalEntries returns the number of reported entries across all groups.
func (ar *AnalysisResult) TotalEntries() int {
	return len(ar.Added) + len(ar.Removed) + len(ar.Modified)
}
