package generator

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"time"

	"diffanalyzer/internal/common"
	"diffanalyzer/internal/config"
	"diffanalyzer/internal/models"

	"github.com/rs/zerolog"
)

// Topics of the generated message stream.
const (
	TopicVehicleStatus = "/vehicle/status"
	TopicTrafficLights = "/perception/traffic_lights"
	TopicObstacles     = "/perception/obstacles"
)

// TelemetryGenerator writes a fixed schedule of simulated driving telemetry
// as JSON Lines. Values are closed-form functions of elapsed time, so output
// is deterministic for a fixed start time.
type TelemetryGenerator struct {
	config config.GeneratorConfig
	logger zerolog.Logger
	start  func() time.Time
}

// NewTelemetryGenerator creates a new telemetry generator.
func NewTelemetryGenerator(cfg config.GeneratorConfig, logger zerolog.Logger) *TelemetryGenerator {
	return &TelemetryGenerator{
		config: cfg,
		logger: logger.With().Str("component", "TelemetryGenerator").Logger(),
		start:  time.Now,
	}
}

// WithStartTime fixes the stream's start time, used by tests for byte-stable
// output.
func (tg *TelemetryGenerator) WithStartTime(start time.Time) *TelemetryGenerator {
	tg.start = func() time.Time { return start }
	return tg
}

// WriteFile generates the configured schedule into the configured output
// file and returns the path and total message count.
func (tg *TelemetryGenerator) WriteFile() (string, int, error) {
	f, err := os.Create(tg.config.OutputFile)
	if err != nil {
		return "", 0, common.WrapErrorf(err, "failed to create output file '%s'", tg.config.OutputFile)
	}
	defer f.Close()

	count, err := tg.Generate(f)
	if err != nil {
		return "", 0, err
	}

	tg.logger.Info().
		Str("path", tg.config.OutputFile).
		Int("messages", count).
		Int("duration_seconds", tg.config.DurationSeconds).
		Int("frequency_hz", tg.config.FrequencyHz).
		Msg("Telemetry data generated")
	return tg.config.OutputFile, count, nil
}

// Generate writes duration*frequency ticks of three messages each to w and
// returns the number of messages written.
func (tg *TelemetryGenerator) Generate(w io.Writer) (int, error) {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	startSeconds := float64(tg.start().UnixNano()) / float64(time.Second)
	frequency := float64(tg.config.FrequencyHz)
	ticks := tg.config.DurationSeconds * tg.config.FrequencyHz

	count := 0
	for i := 0; i < ticks; i++ {
		t := float64(i) / frequency
		timestamp := startSeconds + t

		for _, envelope := range []models.TelemetryEnvelope{
			{Topic: TopicVehicleStatus, Timestamp: timestamp, Message: vehicleStatusAt(t, timestamp)},
			{Topic: TopicTrafficLights, Timestamp: timestamp, Message: trafficLightsAt(t, timestamp)},
			{Topic: TopicObstacles, Timestamp: timestamp, Message: obstaclesAt(t, timestamp)},
		} {
			if err := encoder.Encode(envelope); err != nil {
				return count, common.WrapError(err, "failed to encode telemetry message")
			}
			count++
		}
	}
	return count, nil
}

// vehicleStatusAt builds the vehicle status message for elapsed time t.
func vehicleStatusAt(t, timestamp float64) models.VehicleStatus {
	battery := math.Max(20, 100-t*0.5)

	turnSignal := "off"
	if math.Mod(t, 20) < 5 {
		turnSignal = "left"
	}

	return models.VehicleStatus{
		Speed:      50 + math.Sin(t*0.1)*30,
		RPM:        2000 + math.Sin(t*0.2)*1500,
		Battery:    battery,
		Gear:       "D",
		TurnSignal: turnSignal,
		Warnings: models.VehicleWarnings{
			Engine:      false,
			Battery:     (100 - t*0.5) < 25,
			Temperature: false,
		},
		Timestamp: timestamp * 1000,
	}
}

// trafficLightsAt builds the traffic light message for elapsed time t.
// The light cycles green/yellow/red on a 30 second period; the countdown is
// absent while red.
func trafficLightsAt(t, timestamp float64) models.TrafficLights {
	state := "red"
	switch phase := math.Mod(t, 30); {
	case phase < 10:
		state = "green"
	case phase < 20:
		state = "yellow"
	}

	var timeRemaining *float64
	if state != "red" {
		remaining := 10 - math.Mod(t, 10)
		timeRemaining = &remaining
	}

	distance := math.Max(5, 100-t*2)
	return models.TrafficLights{
		Lights: []models.TrafficLight{
			{
				ID:            "TL001",
				State:         state,
				Confidence:    0.95,
				Distance:      distance,
				TimeRemaining: timeRemaining,
				Position:      models.Vector3{X: 0, Y: 100 - t*2, Z: 5},
				Timestamp:     timestamp * 1000,
			},
		},
		CameraID: "front_camera",
	}
}

// obstaclesAt builds the obstacle message for elapsed time t: a lead car, a
// crossing pedestrian and a bicycle present for 15 of every 20 seconds.
func obstaclesAt(t, timestamp float64) models.Obstacles {
	carY := 20 + math.Sin(t*0.05)*5
	carTTC := carY / 5

	obstacles := []models.Obstacle{
		{
			ID:         "OBS001",
			Type:       "car",
			Position:   models.Vector3{X: 0, Y: carY, Z: 0},
			Velocity:   models.Vector2{X: 0, Y: 0.5},
			Dimensions: models.Dimensions{Length: 4.5, Width: 2, Height: 1.5},
			Confidence: 0.92,
			TTC:        &carTTC,
			Timestamp:  timestamp * 1000,
		},
		{
			ID:         "PED001",
			Type:       "pedestrian",
			Position:   models.Vector3{X: -10 + math.Sin(t*0.2)*2, Y: 15, Z: 0},
			Velocity:   models.Vector2{X: math.Cos(t*0.2) * 0.5, Y: 0},
			Dimensions: models.Dimensions{Length: 0.5, Width: 0.5, Height: 1.8},
			Confidence: 0.85,
			Timestamp:  timestamp * 1000,
		},
	}

	if math.Mod(t, 20) < 15 {
		obstacles = append(obstacles, models.Obstacle{
			ID:         "BIKE001",
			Type:       "bicycle",
			Position:   models.Vector3{X: 8, Y: 10 + math.Mod(t, 20)*0.5, Z: 0},
			Velocity:   models.Vector2{X: 0, Y: 1.5},
			Dimensions: models.Dimensions{Length: 1.8, Width: 0.6, Height: 1.2},
			Confidence: 0.78,
			Timestamp:  timestamp * 1000,
		})
	}

	return models.Obstacles{
		Obstacles:  obstacles,
		SensorType: "fusion",
	}
}
