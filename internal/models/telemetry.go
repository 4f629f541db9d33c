package models

// Vector3 is a 3D position in the vehicle frame.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vector2 is a planar velocity.
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dimensions describes an obstacle's bounding box in meters.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// VehicleWarnings holds the dashboard warning flags.
type VehicleWarnings struct {
	Engine      bool `json:"engine"`
	Battery     bool `json:"battery"`
	Temperature bool `json:"temperature"`
}

// VehicleStatus is the /vehicle/status message payload.
type VehicleStatus struct {
	Speed      float64         `json:"speed"`
	RPM        float64         `json:"rpm"`
	Battery    float64         `json:"battery"`
	Gear       string          `json:"gear"`
	TurnSignal string          `json:"turnSignal"`
	Warnings   VehicleWarnings `json:"warnings"`
	Timestamp  float64         `json:"timestamp"`
}

// TrafficLight is one detected light in a /perception/traffic_lights message.
// TimeRemaining is nil while the light is red.
type TrafficLight struct {
	ID            string   `json:"id"`
	State         string   `json:"state"`
	Confidence    float64  `json:"confidence"`
	Distance      float64  `json:"distance"`
	TimeRemaining *float64 `json:"timeRemaining"`
	Position      Vector3  `json:"position"`
	Timestamp     float64  `json:"timestamp"`
}

// TrafficLights is the /perception/traffic_lights message payload.
type TrafficLights struct {
	Lights   []TrafficLight `json:"lights"`
	CameraID string         `json:"cameraId"`
}

// Obstacle is one tracked object in a /perception/obstacles message.
type Obstacle struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Position   Vector3    `json:"position"`
	Velocity   Vector2    `json:"velocity"`
	Dimensions Dimensions `json:"dimensions"`
	Confidence float64    `json:"confidence"`
	TTC        *float64   `json:"ttc,omitempty"`
	Timestamp  float64    `json:"timestamp"`
}

// Obstacles is the /perception/obstacles message payload.
type Obstacles struct {
	Obstacles  []Obstacle `json:"obstacles"`
	SensorType string     `json:"sensorType"`
}

// TelemetryEnvelope wraps one message with its topic and capture time for the
// JSON Lines output stream.
type TelemetryEnvelope struct {
	Topic     string      `json:"topic"`
	Timestamp float64     `json:"timestamp"`
	Message   interface{} `json:"message"`
}
