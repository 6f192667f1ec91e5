// internal/bus/modbus.go
package bus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

// registerReader is the single Modbus operation the gateway needs.
type registerReader interface {
	ReadInputRegisters(address, quantity uint16) (results []byte, err error)
}

// connectCloser is the handler lifecycle the gateway owns.
type connectCloser interface {
	Connect() error
	Close() error
}

// ModbusGateway reads frames from a bridge device that maps the sensor's
// result buffer into a Modbus input-register window, two frame bytes per
// register in transmission order.
type ModbusGateway struct {
	cli      registerReader
	handler  connectCloser
	register uint16
}

// ModbusConfig is minimal transport config.
type ModbusConfig struct {
	Endpoint string // host:port for TCP, serial device path for RTU
	RTU      bool
	BaudRate int // RTU only; gateway default when zero
	UnitID   byte
	Register uint16 // first input register of the frame window
	Timeout  time.Duration
}

// OpenModbus connects to the gateway. One connection per sensor; the
// connection is reused while healthy.
func OpenModbus(cfg ModbusConfig) (*ModbusGateway, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("bus: modbus endpoint required")
	}

	var handler modbus.ClientHandler
	var lifecycle connectCloser

	if cfg.RTU {
		h := modbus.NewRTUClientHandler(cfg.Endpoint)
		h.SlaveId = cfg.UnitID
		h.Timeout = cfg.Timeout
		if cfg.BaudRate > 0 {
			h.BaudRate = cfg.BaudRate
		}
		handler, lifecycle = h, h
	} else {
		h := modbus.NewTCPClientHandler(cfg.Endpoint)
		h.SlaveId = cfg.UnitID
		h.Timeout = cfg.Timeout
		handler, lifecycle = h, h
	}

	if err := lifecycle.Connect(); err != nil {
		return nil, err
	}

	return &ModbusGateway{
		cli:      modbus.NewClient(handler),
		handler:  lifecycle,
		register: cfg.Register,
	}, nil
}

// Read fills buf from the gateway's register window. A window shorter
// than the frame is a failed transaction, not a partial result.
func (g *ModbusGateway) Read(ctx context.Context, buf []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	qty := uint16((len(buf) + 1) / 2)
	data, err := g.cli.ReadInputRegisters(g.register, qty)
	if err != nil {
		return err
	}
	if len(data) < len(buf) {
		return fmt.Errorf("bus: short register window: got %d bytes, want %d",
			len(data), len(buf))
	}

	copy(buf, data[:len(buf)])
	return nil
}

// Close closes the gateway connection.
func (g *ModbusGateway) Close() error {
	if g == nil || g.handler == nil {
		return nil
	}
	return g.handler.Close()
}
