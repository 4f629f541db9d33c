package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"diffanalyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRender_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	original := testResult()
	require.NoError(t, NewJSONReporter().Render(&buf, original))

	var decoded models.AnalysisResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Added, 1)
	assert.Equal(t, "b.txt", decoded.Added[0].Path)
	require.Len(t, decoded.Modified, 2)
	assert.Equal(t, models.DiffKindText, decoded.Modified[0].DiffInfo.Kind)
	assert.Equal(t, 2, decoded.Modified[0].DiffInfo.TotalChanges)
}

func TestJSONRender_NonASCIIPreservedVerbatim(t *testing.T) {
	result := &models.AnalysisResult{
		Modified: []models.ModifiedEntry{
			{
				Path: "müller/città.txt",
				DiffInfo: models.DiffInfo{
					Kind:    models.DiffKindText,
					Preview: []string{"+<div>naïve & 東京</div>"},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter().Render(&buf, result))

	out := buf.String()
	assert.NotContains(t, out, "\\u003c", "HTML escaping must stay disabled")
	assert.Contains(t, out, "müller/città.txt")
	assert.Contains(t, out, "+<div>naïve & 東京</div>")
}

func TestJSONRender_FieldNames(t *testing.T) {
	result := testResult()
	result.Modified[0].DiffInfo.Preview = []string{"--- oss/a.txt", "+++ custom/a.txt"}

	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter().Render(&buf, result))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	for _, key := range []string{"added", "removed", "modified", "metadata"} {
		assert.Contains(t, doc, key)
	}

	modified := doc["modified"].([]any)[0].(map[string]any)
	diff := modified["diff_info"].(map[string]any)
	assert.Contains(t, diff, "type")
	assert.Contains(t, diff, "diff_preview")
	assert.NotContains(t, diff, "Fragments")
}

func TestJSONRender_Indented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter().Render(&buf, &models.AnalysisResult{}))
	assert.True(t, strings.Contains(buf.String(), "\n  "), "output should be pretty-printed")
}
