// internal/sensor/sensor.go
package sensor

import (
	"context"
	"time"

	"github.com/tamzrod/person-sensor/internal/bus"
	"github.com/tamzrod/person-sensor/internal/protocol"
)

// Sensor is one person-sensor handle: a bus connection plus read pacing.
// The sensor refreshes its inference roughly every 200ms, so reads issued
// faster than that return stale data; pacing spaces them out.
//
// A Sensor paces against its own clock only and holds no other state.
// Distinct Sensor instances on distinct bus handles may be used
// concurrently with no coordination; a single instance belongs to one
// goroutine.
type Sensor struct {
	conn    bus.Conn
	readGap time.Duration
	last    time.Time
}

// Option configures a Sensor.
type Option func(*Sensor)

// WithReadGap sets the minimum spacing between bus reads. Zero or negative
// disables pacing. Default is the vendor-recommended inference interval.
func WithReadGap(d time.Duration) Option {
	return func(s *Sensor) { s.readGap = d }
}

// New wraps an open bus connection.
func New(conn bus.Conn, opts ...Option) *Sensor {
	s := &Sensor{
		conn:    conn,
		readGap: protocol.RecommendedReadGap,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ReadFrame performs one bus transaction and returns the raw frame bytes.
// Bus failures are returned unmodified; there is exactly one transaction
// per call and no retry.
func (s *Sensor) ReadFrame(ctx context.Context) ([]byte, error) {
	if err := s.pace(ctx); err != nil {
		return nil, err
	}

	buf := make([]byte, protocol.FrameBytes)
	if err := s.conn.Read(ctx, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadFaces reads one frame and decodes it. This is the whole read path:
// a bus error means retry the read; a decode error means the bytes are
// untrustworthy and the frame should be discarded.
func (s *Sensor) ReadFaces(ctx context.Context) ([]protocol.Face, error) {
	frame, err := s.ReadFrame(ctx)
	if err != nil {
		return nil, err
	}
	return protocol.Decode(frame)
}

// Close closes the underlying bus connection.
func (s *Sensor) Close() error {
	return s.conn.Close()
}

// pace blocks until the read gap since the previous read has elapsed.
func (s *Sensor) pace(ctx context.Context) error {
	if s.readGap <= 0 {
		return nil
	}

	if wait := s.readGap - time.Since(s.last); wait > 0 {
		t := time.NewTimer(wait)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}

	s.last = time.Now()
	return nil
}
