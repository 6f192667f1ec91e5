// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"time"

	"github.com/tamzrod/person-sensor/internal/protocol"
)

// Source abstracts the sensor read the poller drives.
// The poller depends on this one operation only.
type Source interface {
	ReadFaces(ctx context.Context) ([]protocol.Face, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	SensorID string
	Interval time.Duration
}

// Poller is a dumb, clock-driven reader.
type Poller struct {
	cfg Config
	src Source
}

// New creates a poller with immutable config.
func New(cfg Config, src Source) (*Poller, error) {
	if cfg.SensorID == "" {
		return nil, errors.New("poller: sensor id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if src == nil {
		return nil, errors.New("poller: source required")
	}
	return &Poller{cfg: cfg, src: src}, nil
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: a failed read or decode yields an error result with no
// partial faces.
func (p *Poller) PollOnce(ctx context.Context) PollResult {
	res := PollResult{
		SensorID: p.cfg.SensorID,
		At:       time.Now(),
	}

	faces, err := p.src.ReadFaces(ctx)
	if err != nil {
		res.Err = err
		return res
	}

	res.Faces = faces
	return res
}
