package generator

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"diffanalyzer/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(durationSeconds, frequencyHz int) *TelemetryGenerator {
	cfg := config.NewDefaultGeneratorConfig()
	cfg.DurationSeconds = durationSeconds
	cfg.FrequencyHz = frequencyHz
	return NewTelemetryGenerator(cfg, zerolog.Nop()).
		WithStartTime(time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC))
}

func decodeLines(t *testing.T, data []byte) []map[string]any {
	t.Helper()
	var messages []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var msg map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &msg))
		messages = append(messages, msg)
	}
	require.NoError(t, sc.Err())
	return messages
}

func TestGenerate_MessageCount(t *testing.T) {
	var buf bytes.Buffer
	count, err := newTestGenerator(5, 10).Generate(&buf)
	require.NoError(t, err)

	assert.Equal(t, 5*10*3, count)
	assert.Len(t, decodeLines(t, buf.Bytes()), count)
}

func TestGenerate_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	_, err := newTestGenerator(3, 5).Generate(&first)
	require.NoError(t, err)
	_, err = newTestGenerator(3, 5).Generate(&second)
	require.NoError(t, err)

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestGenerate_TopicsPerTick(t *testing.T) {
	var buf bytes.Buffer
	_, err := newTestGenerator(2, 2).Generate(&buf)
	require.NoError(t, err)

	messages := decodeLines(t, buf.Bytes())
	require.Len(t, messages, 12)
	for i := 0; i < len(messages); i += 3 {
		assert.Equal(t, TopicVehicleStatus, messages[i]["topic"])
		assert.Equal(t, TopicTrafficLights, messages[i+1]["topic"])
		assert.Equal(t, TopicObstacles, messages[i+2]["topic"])
	}
}

func TestGenerate_VehicleStatusFirstTick(t *testing.T) {
	var buf bytes.Buffer
	_, err := newTestGenerator(1, 1).Generate(&buf)
	require.NoError(t, err)

	messages := decodeLines(t, buf.Bytes())
	status := messages[0]["message"].(map[string]any)

	assert.InDelta(t, 50.0, status["speed"], 1e-9)
	assert.InDelta(t, 2000.0, status["rpm"], 1e-9)
	assert.InDelta(t, 100.0, status["battery"], 1e-9)
	assert.Equal(t, "D", status["gear"])
	assert.Equal(t, "left", status["turnSignal"])

	warnings := status["warnings"].(map[string]any)
	assert.Equal(t, false, warnings["engine"])
	assert.Equal(t, false, warnings["battery"])
}

func TestGenerate_TrafficLightPhases(t *testing.T) {
	var buf bytes.Buffer
	// 25 ticks at 1 Hz covers green, yellow and red phases.
	_, err := newTestGenerator(25, 1).Generate(&buf)
	require.NoError(t, err)

	messages := decodeLines(t, buf.Bytes())
	stateAt := func(tick int) map[string]any {
		lights := messages[tick*3+1]["message"].(map[string]any)["lights"].([]any)
		return lights[0].(map[string]any)
	}

	assert.Equal(t, "green", stateAt(0)["state"])
	assert.Equal(t, "yellow", stateAt(12)["state"])
	assert.Equal(t, "red", stateAt(22)["state"])

	assert.Contains(t, stateAt(0), "timeRemaining")
	assert.NotNil(t, stateAt(0)["timeRemaining"])
	assert.Nil(t, stateAt(22)["timeRemaining"])
}

func TestGenerate_BicycleSchedule(t *testing.T) {
	var buf bytes.Buffer
	_, err := newTestGenerator(20, 1).Generate(&buf)
	require.NoError(t, err)

	messages := decodeLines(t, buf.Bytes())
	idsAt := func(tick int) []string {
		raw := messages[tick*3+2]["message"].(map[string]any)["obstacles"].([]any)
		var ids []string
		for _, o := range raw {
			ids = append(ids, o.(map[string]any)["id"].(string))
		}
		return ids
	}

	// Bicycle rides for the first 15 seconds of every 20 second window.
	assert.Contains(t, idsAt(0), "BIKE001")
	assert.Contains(t, idsAt(14), "BIKE001")
	assert.NotContains(t, idsAt(15), "BIKE001")
	assert.NotContains(t, idsAt(19), "BIKE001")

	for _, tick := range []int{0, 10, 19} {
		assert.Contains(t, idsAt(tick), "OBS001")
		assert.Contains(t, idsAt(tick), "PED001")
	}
}

func TestGenerate_PedestrianHasNoTTC(t *testing.T) {
	var buf bytes.Buffer
	_, err := newTestGenerator(1, 1).Generate(&buf)
	require.NoError(t, err)

	messages := decodeLines(t, buf.Bytes())
	obstacles := messages[2]["message"].(map[string]any)["obstacles"].([]any)

	for _, raw := range obstacles {
		obstacle := raw.(map[string]any)
		switch obstacle["id"] {
		case "OBS001":
			assert.Contains(t, obstacle, "ttc")
		case "PED001":
			assert.NotContains(t, obstacle, "ttc")
		}
	}
}

func TestWriteFile_CreatesOutput(t *testing.T) {
	cfg := config.NewDefaultGeneratorConfig()
	cfg.DurationSeconds = 1
	cfg.FrequencyHz = 2
	cfg.OutputFile = t.TempDir() + "/telemetry.jsonl"

	path, count, err := NewTelemetryGenerator(cfg, zerolog.Nop()).WriteFile()
	require.NoError(t, err)
	assert.Equal(t, cfg.OutputFile, path)
	assert.Equal(t, 6, count)
	assert.FileExists(t, path)
}
