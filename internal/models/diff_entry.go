package models

// DiffKind classifies the detailed diff computed for a modified file.
type DiffKind string

const (
	// DiffKindText indicates a line-based unified diff was computed.
	DiffKindText DiffKind = "text"
	// DiffKindBinary indicates at least one side is binary; no line diff exists.
	DiffKindBinary DiffKind = "binary"
	// DiffKindError indicates one side could not be read as text.
	DiffKindError DiffKind = "error"
)

// DiffFragmentOp mirrors the diff operation of an inline fragment.
type DiffFragmentOp int

const (
	// FragmentDelete marks text present only on the oss side.
	FragmentDelete DiffFragmentOp = -1
	// FragmentEqual marks text shared by both sides.
	FragmentEqual DiffFragmentOp = 0
	// FragmentInsert marks text present only on the custom side.
	FragmentInsert DiffFragmentOp = 1
)

// DiffFragment is one inline segment of a modified file, used by the HTML
// report to render a colored preview.
type DiffFragment struct {
	Op   DiffFragmentOp `json:"op"`
	Text string         `json:"text"`
}

// DiffInfo describes the detailed difference between the two versions of a
// modified file.
type DiffInfo struct {
	Kind         DiffKind       `json:"type"`
	AddedLines   int            `json:"added_lines,omitempty"`
	RemovedLines int            `json:"removed_lines,omitempty"`
	TotalChanges int            `json:"total_changes,omitempty"`
	Preview      []string       `json:"diff_preview,omitempty"`
	Fragments    []DiffFragment `json:"-"`
	Summary      string         `json:"summary,omitempty"`
}

// FileEntry is one added or removed file in the analysis result.
type FileEntry struct {
	Path  string     `json:"path"`
	Stats FileRecord `json:"stats"`
}

// ModifiedEntry is one file present in both trees with differing content.
type ModifiedEntry struct {
	Path        string     `json:"path"`
	OssStats    FileRecord `json:"oss_stats"`
	CustomStats FileRecord `json:"custom_stats"`
	DiffInfo    DiffInfo   `json:"diff_info"`
}
