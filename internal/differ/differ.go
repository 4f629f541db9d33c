package differ

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"diffanalyzer/internal/common"
	"diffanalyzer/internal/config"
	"diffanalyzer/internal/models"
	"diffanalyzer/internal/prober"
	"diffanalyzer/internal/scanner"

	"github.com/rs/zerolog"
)

// DirectoryDiffer compares two directory trees and classifies every
// non-excluded file as added, removed or modified. Files identical on both
// sides are omitted from the result.
type DirectoryDiffer struct {
	scanner *scanner.TreeScanner
	prober  *prober.FileProber
	config  config.DiffConfig
	logger  zerolog.Logger
	now     func() time.Time
}

// DirectoryDifferBuilder provides a fluent interface for creating DirectoryDiffer
type DirectoryDifferBuilder struct {
	scanner *scanner.TreeScanner
	prober  *prober.FileProber
	config  config.DiffConfig
	logger  zerolog.Logger
	now     func() time.Time
}

// NewDirectoryDifferBuilder creates a new builder
func NewDirectoryDifferBuilder() *DirectoryDifferBuilder {
	return &DirectoryDifferBuilder{
		config: config.NewDefaultDiffConfig(),
		logger: zerolog.Nop(),
		now:    time.Now,
	}
}

// WithScanner sets the tree scanner
func (b *DirectoryDifferBuilder) WithScanner(ts *scanner.TreeScanner) *DirectoryDifferBuilder {
	b.scanner = ts
	return b
}

// WithProber sets the file prober
func (b *DirectoryDifferBuilder) WithProber(fp *prober.FileProber) *DirectoryDifferBuilder {
	b.prober = fp
	return b
}

// WithDiffConfig sets the diff configuration
func (b *DirectoryDifferBuilder) WithDiffConfig(cfg config.DiffConfig) *DirectoryDifferBuilder {
	b.config = cfg
	return b
}

// WithLogger sets the logger
func (b *DirectoryDifferBuilder) WithLogger(logger zerolog.Logger) *DirectoryDifferBuilder {
	b.logger = logger.With().Str("component", "DirectoryDiffer").Logger()
	return b
}

// WithClock overrides the wall clock, used by tests for deterministic metadata
func (b *DirectoryDifferBuilder) WithClock(now func() time.Time) *DirectoryDifferBuilder {
	b.now = now
	return b
}

// Build creates a new DirectoryDiffer instance
func (b *DirectoryDifferBuilder) Build() (*DirectoryDiffer, error) {
	if b.scanner == nil {
		return nil, common.NewValidationError("scanner", b.scanner, "tree scanner cannot be nil")
	}
	if b.prober == nil {
		return nil, common.NewValidationError("prober", b.prober, "file prober cannot be nil")
	}

	return &DirectoryDiffer{
		scanner: b.scanner,
		prober:  b.prober,
		config:  b.config,
		logger:  b.logger,
		now:     b.now,
	}, nil
}

// Analyze scans both roots, partitions their file sets and builds the full
// analysis result. The only hard failure is a missing root directory;
// per-file errors degrade to marked entries.
func (dd *DirectoryDiffer) Analyze(ctx context.Context, ossRoot, customRoot string) (*models.AnalysisResult, error) {
	if err := validateRoot("oss", ossRoot); err != nil {
		return nil, err
	}
	if err := validateRoot("custom", customRoot); err != nil {
		return nil, err
	}

	dd.logger.Info().Str("oss_dir", ossRoot).Str("custom_dir", customRoot).Msg("Starting directory analysis")

	ossFiles, err := dd.scanner.Scan(ossRoot)
	if err != nil {
		return nil, common.WrapError(err, "failed to scan oss directory")
	}
	customFiles, err := dd.scanner.Scan(customRoot)
	if err != nil {
		return nil, common.WrapError(err, "failed to scan custom directory")
	}

	added := sortedDifference(customFiles, ossFiles)
	removed := sortedDifference(ossFiles, customFiles)
	commonPaths := sortedIntersection(ossFiles, customFiles)

	dd.logger.Info().
		Int("added", len(added)).
		Int("removed", len(removed)).
		Int("common", len(commonPaths)).
		Msg("File sets partitioned")

	result := &models.AnalysisResult{
		Added:    make([]models.FileEntry, 0, len(added)),
		Removed:  make([]models.FileEntry, 0, len(removed)),
		Modified: make([]models.ModifiedEntry, 0),
		Metadata: models.AnalysisMetadata{
			OssDir:           ossRoot,
			CustomDir:        customRoot,
			AnalysisTime:     dd.now(),
			TotalFilesOss:    len(ossFiles),
			TotalFilesCustom: len(customFiles),
		},
	}

	for _, relPath := range added {
		result.Added = append(result.Added, models.FileEntry{
			Path:  relPath,
			Stats: dd.prober.Probe(filepath.Join(customRoot, filepath.FromSlash(relPath)), relPath),
		})
	}
	for _, relPath := range removed {
		result.Removed = append(result.Removed, models.FileEntry{
			Path:  relPath,
			Stats: dd.prober.Probe(filepath.Join(ossRoot, filepath.FromSlash(relPath)), relPath),
		})
	}

	result.Modified = dd.compareCommonFiles(ctx, ossRoot, customRoot, commonPaths)

	dd.logger.Info().
		Int("modified", len(result.Modified)).
		Int("total_entries", result.TotalEntries()).
		Msg("Directory analysis completed")
	return result, nil
}

// compareCommonFiles probes every path present in both trees and emits a
// modified entry when the content hashes differ. Probing fans out over a
// bounded worker pool; each file is independent so no ordering guarantee
// depends on sequential execution.
func (dd *DirectoryDiffer) compareCommonFiles(ctx context.Context, ossRoot, customRoot string, commonPaths []string) []models.ModifiedEntry {
	results := make([]*models.ModifiedEntry, len(commonPaths))

	workers := dd.config.MaxProbeWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > len(commonPaths) {
		workers = len(commonPaths)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					continue
				}
				results[idx] = dd.compareCommonFile(ossRoot, customRoot, commonPaths[idx])
			}
		}()
	}
	for i := range commonPaths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	modified := make([]models.ModifiedEntry, 0, len(commonPaths))
	for _, entry := range results {
		if entry != nil {
			modified = append(modified, *entry)
		}
	}
	return modified
}

// compareCommonFile returns a modified entry for relPath, or nil when the
// content hashes match.
func (dd *DirectoryDiffer) compareCommonFile(ossRoot, customRoot, relPath string) *models.ModifiedEntry {
	ossPath := filepath.Join(ossRoot, filepath.FromSlash(relPath))
	customPath := filepath.Join(customRoot, filepath.FromSlash(relPath))

	ossStats := dd.prober.Probe(ossPath, relPath)
	customStats := dd.prober.Probe(customPath, relPath)

	if ossStats.Hash == customStats.Hash {
		return nil
	}

	dd.logger.Debug().Str("path", relPath).Msg("Content hash mismatch, computing detailed diff")
	return &models.ModifiedEntry{
		Path:        relPath,
		OssStats:    ossStats,
		CustomStats: customStats,
		DiffInfo:    dd.buildDiffInfo(ossPath, customPath, relPath),
	}
}

// validateRoot checks that root exists and is a directory.
func validateRoot(role, root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return common.NewInputNotFoundError(role, root)
	}
	return nil
}

// sortedDifference returns the members of a that are absent from b, sorted.
func sortedDifference(a, b map[string]struct{}) []string {
	diff := make([]string, 0)
	for path := range a {
		if _, ok := b[path]; !ok {
			diff = append(diff, path)
		}
	}
	sort.Strings(diff)
	return diff
}

// sortedIntersection returns the members present in both a and b, sorted.
func sortedIntersection(a, b map[string]struct{}) []string {
	intersection := make([]string, 0)
	for path := range a {
		if _, ok := b[path]; ok {
			intersection = append(intersection, path)
		}
	}
	sort.Strings(intersection)
	return intersection
}
