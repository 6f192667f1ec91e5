// internal/poller/builder.go
package poller

import (
	"fmt"
	"time"

	"github.com/tamzrod/person-sensor/internal/bus"
	cfg "github.com/tamzrod/person-sensor/internal/config"
	"github.com/tamzrod/person-sensor/internal/sensor"
)

// Build constructs a Poller and wires the bus transport lifecycle.
// The connection is opened once (fail fast at startup) and reused; the
// returned closer releases it.
func Build(sc cfg.SensorConfig) (*Poller, func() error, error) {
	conn, err := openConn(sc.Bus)
	if err != nil {
		return nil, nil, err
	}

	opts := []sensor.Option{}
	if sc.ReadGapMs != nil {
		opts = append(opts, sensor.WithReadGap(time.Duration(*sc.ReadGapMs)*time.Millisecond))
	}
	src := sensor.New(conn, opts...)

	p, err := New(
		Config{
			SensorID: sc.ID,
			Interval: time.Duration(sc.Poll.IntervalMs) * time.Millisecond,
		},
		src,
	)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	return p, conn.Close, nil
}

func openConn(bc cfg.BusConfig) (bus.Conn, error) {
	timeout := time.Duration(bc.TimeoutMs) * time.Millisecond

	switch bc.Kind {
	case cfg.BusI2C:
		return bus.OpenI2C(bus.I2CConfig{
			Device: bc.Device,
			Addr:   bc.Addr,
		})

	case cfg.BusModbusTCP:
		return bus.OpenModbus(bus.ModbusConfig{
			Endpoint: bc.Endpoint,
			UnitID:   bc.UnitID,
			Register: bc.Register,
			Timeout:  timeout,
		})

	case cfg.BusModbusRTU:
		return bus.OpenModbus(bus.ModbusConfig{
			Endpoint: bc.Device,
			RTU:      true,
			BaudRate: bc.BaudRate,
			UnitID:   bc.UnitID,
			Register: bc.Register,
			Timeout:  timeout,
		})

	default:
		return nil, fmt.Errorf("poller: unsupported bus kind %q", bc.Kind)
	}
}
