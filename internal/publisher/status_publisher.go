// internal/publisher/status_publisher.go
package publisher

import (
	"errors"
	"fmt"

	"github.com/tamzrod/person-sensor/internal/status"
)

// StatusPublisher is the delivery-only contract for sensor health.
// It receives a snapshot and publishes it verbatim.
// No logic, no state, no interpretation beyond change detection.
type StatusPublisher interface {
	PublishStatus(s status.Snapshot) error
}

// statusPublisher publishes retained snapshots so late subscribers see the
// current health immediately.
type statusPublisher struct {
	plan Plan
	cli  client

	needAssert bool
	last       status.Snapshot
}

// NewStatusPublisher builds a status publisher if the sensor opted in.
// If the plan has no status topic, status is disabled.
func NewStatusPublisher(plan Plan, cli client) (StatusPublisher, bool) {
	if plan.StatusTopic == "" {
		return nil, false
	}

	return &statusPublisher{
		plan:       plan,
		cli:        cli,
		needAssert: true, // re-assert on first successful publish
		last: status.Snapshot{
			Health: status.HealthUnknown,
		},
	}, true
}

// PublishStatus delivers a health snapshot to the retained status topic.
// Unchanged snapshots are suppressed; any publish failure forces the next
// call to re-assert regardless of change.
func (sp *statusPublisher) PublishStatus(s status.Snapshot) error {
	if sp == nil || sp.plan.StatusTopic == "" {
		return errors.New("status publisher: disabled")
	}
	if sp.cli == nil {
		return fmt.Errorf("status publisher: missing client for sensor %s", sp.plan.SensorID)
	}

	if !sp.needAssert && s == sp.last {
		return nil
	}

	if err := sp.cli.Publish(sp.plan.StatusTopic, sp.plan.QoS, true, status.Encode(s)); err != nil {
		// Doubt about broker state: re-assert on next success.
		sp.needAssert = true
		return fmt.Errorf("status publisher: topic=%s err=%w", sp.plan.StatusTopic, err)
	}

	sp.needAssert = false
	sp.last = s
	return nil
}
