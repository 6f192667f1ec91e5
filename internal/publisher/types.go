// internal/publisher/types.go
package publisher

import "github.com/tamzrod/person-sensor/internal/poller"

// Plan is the fully-built delivery plan for one sensor.
type Plan struct {
	SensorID    string
	FacesTopic  string
	StatusTopic string // empty when status is disabled for the sensor
	QoS         byte
}

// Publisher delivers poll snapshots to the faces topic.
type Publisher interface {
	Publish(res poller.PollResult) error
}
