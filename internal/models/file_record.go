package models

import "time"

// FileRecord holds per-file metadata collected by the prober.
// A zero-valued record (empty hash, zero size) means the file could not be
// probed, not that the file is empty.
type FileRecord struct {
	Size     int64     `json:"size"`
	ModTime  time.Time `json:"mtime"`
	Category string    `json:"category"`
	Hash     string    `json:"hash"`
	Lines    int       `json:"lines,omitempty"`
	IsText   bool      `json:"-"`
}

// IsZero reports whether the record came from a failed probe.
func (fr FileRecord) IsZero() bool {
	return fr.Hash == "" && fr.Size == 0 && fr.ModTime.IsZero()
}
