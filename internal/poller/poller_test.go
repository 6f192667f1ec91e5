// internal/poller/poller_test.go
package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tamzrod/person-sensor/internal/protocol"
)

type fakeSource struct {
	faces []protocol.Face
	err   error
}

func (f *fakeSource) ReadFaces(context.Context) ([]protocol.Face, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.faces, nil
}

func TestPollOnce_Success(t *testing.T) {
	faces := []protocol.Face{
		{BoxConfidence: 92, Box: protocol.Box{Left: 10, Top: 20, Right: 50, Bottom: 80}, IsFacing: true, ID: protocol.IDNone},
	}

	p, err := New(Config{SensorID: "door", Interval: time.Second}, &fakeSource{faces: faces})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.PollOnce(context.Background())
	if res.Err != nil {
		t.Fatalf("PollOnce err=%v", res.Err)
	}
	if res.SensorID != "door" {
		t.Fatalf("sensor id: got %q", res.SensorID)
	}
	if len(res.Faces) != 1 {
		t.Fatalf("expected 1 face, got %d", len(res.Faces))
	}
}

func TestPollOnce_Failure(t *testing.T) {
	readErr := errors.New("bus gone")

	p, err := New(Config{SensorID: "door", Interval: time.Second}, &fakeSource{err: readErr})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.PollOnce(context.Background())
	if !errors.Is(res.Err, readErr) {
		t.Fatalf("expected read error, got %v", res.Err)
	}
	if res.Faces != nil {
		t.Fatalf("no partial faces on failure")
	}
}

func TestNew_Validation(t *testing.T) {
	src := &fakeSource{}

	if _, err := New(Config{SensorID: "", Interval: time.Second}, src); err == nil {
		t.Fatalf("expected error for empty sensor id")
	}
	if _, err := New(Config{SensorID: "x", Interval: 0}, src); err == nil {
		t.Fatalf("expected error for zero interval")
	}
	if _, err := New(Config{SensorID: "x", Interval: time.Second}, nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
}

func TestRun_EmitsAndStops(t *testing.T) {
	p, err := New(Config{SensorID: "door", Interval: 5 * time.Millisecond}, &fakeSource{})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan PollResult)
	done := make(chan struct{})
	go func() {
		p.Run(ctx, out)
		close(done)
	}()

	res := <-out
	if res.Err != nil {
		t.Fatalf("unexpected poll error: %v", res.Err)
	}

	cancel()
	deadline := time.After(time.Second)
	for {
		select {
		case <-out: // keep draining while Run winds down
		case <-done:
			return
		case <-deadline:
			t.Fatalf("Run did not stop on cancel")
		}
	}
}
