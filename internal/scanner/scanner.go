package scanner

import (
	"io/fs"
	"path/filepath"

	"diffanalyzer/internal/common"

	"github.com/rs/zerolog"
)

// TreeScanner enumerates regular files under a root directory, producing
// root-relative forward-slash paths with excluded paths dropped.
type TreeScanner struct {
	filter *ExclusionFilter
	logger zerolog.Logger
}

// NewTreeScanner creates a new tree scanner.
func NewTreeScanner(filter *ExclusionFilter, logger zerolog.Logger) *TreeScanner {
	return &TreeScanner{
		filter: filter,
		logger: logger.With().Str("component", "TreeScanner").Logger(),
	}
}

// Scan walks root and returns the set of relative paths of its non-excluded
// regular files. Symlinks are skipped entirely, which also prevents walking
// into symlink cycles.
func (ts *TreeScanner) Scan(root string) (map[string]struct{}, error) {
	files := make(map[string]struct{})

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable subtree degrades to a partial listing rather
			// than aborting the scan.
			ts.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable path during scan")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return common.WrapErrorf(relErr, "failed to relativize '%s' against '%s'", path, root)
		}

		relPath := filepath.ToSlash(rel)
		if ts.filter.ShouldExclude(relPath) {
			ts.logger.Debug().Str("path", relPath).Msg("Path excluded by filter")
			return nil
		}

		files[relPath] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to scan directory '%s'", root)
	}

	ts.logger.Debug().Str("root", root).Int("file_count", len(files)).Msg("Directory scan completed")
	return files, nil
}
