// internal/status/encode.go
package status

import (
	"encoding/json"
	"errors"

	"github.com/tamzrod/person-sensor/internal/protocol"
)

type payload struct {
	Health         string `json:"health"`
	HealthCode     uint16 `json:"health_code"`
	LastErrorCode  uint16 `json:"last_error_code"`
	SecondsInError uint16 `json:"seconds_in_error"`
}

// Encode converts a Snapshot into the status topic payload.
// No IO. No side effects.
func Encode(s Snapshot) []byte {
	b, _ := json.Marshal(payload{
		Health:         healthText(s.Health),
		HealthCode:     s.Health,
		LastErrorCode:  s.LastErrorCode,
		SecondsInError: s.SecondsInError,
	})
	return b
}

// CodeFor maps a poll failure to its status error code.
func CodeFor(err error) uint16 {
	switch {
	case err == nil:
		return CodeNone
	case errors.Is(err, protocol.ErrTruncated):
		return CodeTruncated
	case errors.Is(err, protocol.ErrChecksumMismatch):
		return CodeChecksum
	case errors.Is(err, protocol.ErrInvalidFaceCount):
		return CodeFaceCount
	default:
		// Anything the decoder did not classify came from the bus.
		return CodeIO
	}
}

func healthText(h uint16) string {
	switch h {
	case HealthOK:
		return "ok"
	case HealthError:
		return "error"
	case HealthStale:
		return "stale"
	case HealthDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}
