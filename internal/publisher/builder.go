// internal/publisher/builder.go
package publisher

import (
	"errors"
	"fmt"
	"time"

	cfg "github.com/tamzrod/person-sensor/internal/config"
	pmqtt "github.com/tamzrod/person-sensor/internal/publisher/mqtt"
)

// BuildPlan converts one sensor config into a delivery Plan.
// Assumes config has already passed validation and normalization.
func BuildPlan(sc cfg.SensorConfig, mc cfg.MQTTConfig) (Plan, error) {
	if sc.ID == "" {
		return Plan{}, errors.New("publisher: sensor.id required")
	}

	plan := Plan{
		SensorID:   sc.ID,
		FacesTopic: fmt.Sprintf("%s/%s/faces", mc.TopicPrefix, sc.ID),
		QoS:        byte(mc.QoS),
	}

	if sc.Status {
		plan.StatusTopic = fmt.Sprintf("%s/%s/status", mc.TopicPrefix, sc.ID)
	}

	return plan, nil
}

// BuildClient creates the shared broker connection for all sensors.
func BuildClient(mc cfg.MQTTConfig) (*pmqtt.Client, func() error, error) {
	c, err := pmqtt.New(pmqtt.Config{
		Broker:   mc.Broker,
		ClientID: mc.ClientID,
		Timeout:  time.Duration(mc.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}
	return c, c.Close, nil
}
