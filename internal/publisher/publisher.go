// internal/publisher/publisher.go
package publisher

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tamzrod/person-sensor/internal/poller"
	"github.com/tamzrod/person-sensor/internal/protocol"
)

// client is the exact contract the publisher uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type client interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

// faceEvent is the faces-topic payload for one successful poll cycle.
type faceEvent struct {
	SensorID string          `json:"sensor_id"`
	At       time.Time       `json:"at"`
	Count    int             `json:"count"`
	Faces    []protocol.Face `json:"faces"`
}

type publisherImpl struct {
	plan Plan
	cli  client
}

func New(plan Plan, cli client) Publisher {
	return &publisherImpl{
		plan: plan,
		cli:  cli,
	}
}

// Publish delivers one poll snapshot. Failed cycles carry no data and are
// skipped here; they reach the status topic instead.
func (p *publisherImpl) Publish(res poller.PollResult) error {
	if res.Err != nil {
		return nil
	}
	if p.cli == nil {
		return fmt.Errorf("publisher: missing client for sensor %s", p.plan.SensorID)
	}

	ev := faceEvent{
		SensorID: res.SensorID,
		At:       res.At,
		Count:    len(res.Faces),
		Faces:    res.Faces,
	}
	if ev.Faces == nil {
		// Empty frames are valid results; publish an explicit empty list.
		ev.Faces = []protocol.Face{}
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("publisher: marshal event for sensor %s: %w", p.plan.SensorID, err)
	}

	if err := p.cli.Publish(p.plan.FacesTopic, p.plan.QoS, false, payload); err != nil {
		return fmt.Errorf("publisher: topic=%s err=%w", p.plan.FacesTopic, err)
	}
	return nil
}
