// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/person-sensor/internal/protocol"
)

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	SensorID string
	At       time.Time

	// Faces is nil when the sensor saw nobody; the distinction that
	// matters is Err.
	Faces []protocol.Face

	Err error // non-nil means the poll cycle failed
}
