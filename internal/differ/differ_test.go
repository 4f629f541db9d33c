package differ

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"diffanalyzer/internal/classifier"
	"diffanalyzer/internal/common"
	"diffanalyzer/internal/config"
	"diffanalyzer/internal/models"
	"diffanalyzer/internal/prober"
	"diffanalyzer/internal/scanner"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, relPath string, content []byte) {
	t.Helper()
	fullPath := filepath.Join(root, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, content, 0o644))
}

func newTestDiffer(t *testing.T) *DirectoryDiffer {
	t.Helper()

	gCfg := config.NewDefaultGlobalConfig()
	fileClassifier := classifier.NewFileClassifier(gCfg.ClassifierConfig)
	filter, err := scanner.NewExclusionFilter(gCfg.ExclusionConfig.Patterns)
	require.NoError(t, err)

	dd, err := NewDirectoryDifferBuilder().
		WithScanner(scanner.NewTreeScanner(filter, zerolog.Nop())).
		WithProber(prober.NewFileProber(fileClassifier, gCfg.DiffConfig.TextSampleSize, zerolog.Nop())).
		WithDiffConfig(gCfg.DiffConfig).
		Build()
	require.NoError(t, err)
	return dd
}

func TestAnalyze_AddedRemovedModifiedScenario(t *testing.T) {
	ossRoot := t.TempDir()
	customRoot := t.TempDir()
	writeFile(t, ossRoot, "a.txt", []byte("hello\n"))
	writeFile(t, ossRoot, "c.txt", []byte("gone\n"))
	writeFile(t, customRoot, "a.txt", []byte("hello world\n"))
	writeFile(t, customRoot, "b.txt", []byte("new file\n"))

	result, err := newTestDiffer(t).Analyze(context.Background(), ossRoot, customRoot)
	require.NoError(t, err)

	require.Len(t, result.Added, 1)
	assert.Equal(t, "b.txt", result.Added[0].Path)

	require.Len(t, result.Removed, 1)
	assert.Equal(t, "c.txt", result.Removed[0].Path)

	require.Len(t, result.Modified, 1)
	entry := result.Modified[0]
	assert.Equal(t, "a.txt", entry.Path)
	assert.Equal(t, models.DiffKindText, entry.DiffInfo.Kind)
	assert.Equal(t, 1, entry.DiffInfo.AddedLines)
	assert.Equal(t, 1, entry.DiffInfo.RemovedLines)
	assert.Equal(t, 2, entry.DiffInfo.TotalChanges)
	require.NotEmpty(t, entry.DiffInfo.Preview)
	assert.Equal(t, "--- oss/a.txt", entry.DiffInfo.Preview[0])
	assert.Contains(t, entry.DiffInfo.Preview, "-hello")
	assert.Contains(t, entry.DiffInfo.Preview, "+hello world")

	assert.Equal(t, 2, result.Metadata.TotalFilesOss)
	assert.Equal(t, 2, result.Metadata.TotalFilesCustom)
	assert.Equal(t, ossRoot, result.Metadata.OssDir)
	assert.Equal(t, customRoot, result.Metadata.CustomDir)
}

func TestAnalyze_IdenticalFileReportedNowhere(t *testing.T) {
	ossRoot := t.TempDir()
	customRoot := t.TempDir()
	writeFile(t, ossRoot, "same.txt", []byte("identical content\n"))
	writeFile(t, customRoot, "same.txt", []byte("identical content\n"))

	result, err := newTestDiffer(t).Analyze(context.Background(), ossRoot, customRoot)
	require.NoError(t, err)

	assert.Empty(t, result.Added)
	assert.Empty(t, result.Removed)
	assert.Empty(t, result.Modified)
	assert.Equal(t, 1, result.Metadata.TotalFilesOss)
	assert.Equal(t, 1, result.Metadata.TotalFilesCustom)
}

func TestAnalyze_GroupsAreDisjoint(t *testing.T) {
	ossRoot := t.TempDir()
	customRoot := t.TempDir()
	writeFile(t, ossRoot, "keep.txt", []byte("keep\n"))
	writeFile(t, ossRoot, "change.txt", []byte("old\n"))
	writeFile(t, ossRoot, "remove.txt", []byte("bye\n"))
	writeFile(t, customRoot, "keep.txt", []byte("keep\n"))
	writeFile(t, customRoot, "change.txt", []byte("new\n"))
	writeFile(t, customRoot, "add.txt", []byte("hi\n"))

	result, err := newTestDiffer(t).Analyze(context.Background(), ossRoot, customRoot)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, e := range result.Added {
		seen[e.Path]++
	}
	for _, e := range result.Removed {
		seen[e.Path]++
	}
	for _, e := range result.Modified {
		seen[e.Path]++
	}
	for path, count := range seen {
		assert.Equal(t, 1, count, "path %s appears in more than one group", path)
	}
	assert.NotContains(t, seen, "keep.txt")
}

func TestAnalyze_ExcludedPathsNeverAppear(t *testing.T) {
	ossRoot := t.TempDir()
	customRoot := t.TempDir()
	writeFile(t, ossRoot, "node_modules/x.js", []byte("old\n"))
	writeFile(t, customRoot, "node_modules/x.js", []byte("new\n"))
	writeFile(t, customRoot, "node_modules/extra.js", []byte("added\n"))

	result, err := newTestDiffer(t).Analyze(context.Background(), ossRoot, customRoot)
	require.NoError(t, err)

	assert.Empty(t, result.Added)
	assert.Empty(t, result.Removed)
	assert.Empty(t, result.Modified)
	assert.Zero(t, result.Metadata.TotalFilesOss)
	assert.Zero(t, result.Metadata.TotalFilesCustom)
}

func TestAnalyze_BinaryModifiedFile(t *testing.T) {
	ossRoot := t.TempDir()
	customRoot := t.TempDir()
	writeFile(t, ossRoot, "blob.bin", []byte{0x00, 0x01, 0x02})
	writeFile(t, customRoot, "blob.bin", []byte{0x00, 0x01, 0x03})

	result, err := newTestDiffer(t).Analyze(context.Background(), ossRoot, customRoot)
	require.NoError(t, err)

	require.Len(t, result.Modified, 1)
	info := result.Modified[0].DiffInfo
	assert.Equal(t, models.DiffKindBinary, info.Kind)
	assert.Zero(t, info.AddedLines)
	assert.Zero(t, info.RemovedLines)
	assert.Empty(t, info.Preview)
}

func TestAnalyze_MissingRootFailsFast(t *testing.T) {
	existing := t.TempDir()
	missing := filepath.Join(existing, "does-not-exist")

	_, err := newTestDiffer(t).Analyze(context.Background(), missing, existing)
	var notFound *common.InputNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "oss", notFound.Role)

	_, err = newTestDiffer(t).Analyze(context.Background(), existing, missing)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "custom", notFound.Role)
}

func TestAnalyze_Idempotent(t *testing.T) {
	ossRoot := t.TempDir()
	customRoot := t.TempDir()
	for i, name := range []string{"a.go", "b.go", "c.go", "d.go"} {
		writeFile(t, ossRoot, name, []byte{byte('a' + i), '\n'})
	}
	writeFile(t, customRoot, "a.go", []byte("a\n"))
	writeFile(t, customRoot, "b.go", []byte("changed\n"))
	writeFile(t, customRoot, "e.go", []byte("e\n"))

	dd := newTestDiffer(t)
	first, err := dd.Analyze(context.Background(), ossRoot, customRoot)
	require.NoError(t, err)
	second, err := dd.Analyze(context.Background(), ossRoot, customRoot)
	require.NoError(t, err)

	assert.Equal(t, first.Added, second.Added)
	assert.Equal(t, first.Removed, second.Removed)
	assert.Equal(t, first.Modified, second.Modified)
}

func TestAnalyze_EntriesSortedByPath(t *testing.T) {
	ossRoot := t.TempDir()
	customRoot := t.TempDir()
	for _, name := range []string{"z.txt", "m.txt", "a.txt"} {
		writeFile(t, customRoot, name, []byte(name+"\n"))
	}

	result, err := newTestDiffer(t).Analyze(context.Background(), ossRoot, customRoot)
	require.NoError(t, err)

	require.Len(t, result.Added, 3)
	assert.Equal(t, "a.txt", result.Added[0].Path)
	assert.Equal(t, "m.txt", result.Added[1].Path)
	assert.Equal(t, "z.txt", result.Added[2].Path)
}

func TestCountChangedLines_IgnoresFileHeaders(t *testing.T) {
	lines := []string{
		"--- oss/a.txt",
		"+++ custom/a.txt",
		"@@ -1,2 +1,2 @@",
		" context",
		"-old line",
		"+new line",
		"+another new line",
	}
	added, removed := countChangedLines(lines)
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, removed)
}

func TestInlineFragments_MarksInsertAndDelete(t *testing.T) {
	fragments := inlineFragments("hello\n", "hello world\n")
	require.NotEmpty(t, fragments)

	var hasInsert bool
	for _, frag := range fragments {
		if frag.Op == models.FragmentInsert {
			hasInsert = true
		}
	}
	assert.True(t, hasInsert)
}
