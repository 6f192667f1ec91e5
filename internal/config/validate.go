// internal/config/validate.go
package config

import (
	"fmt"
)

// Bus kinds accepted in config.
const (
	BusI2C       = "i2c"
	BusModbusTCP = "modbus-tcp"
	BusModbusRTU = "modbus-rtu"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	if len(cfg.Persond.Sensors) == 0 {
		return fmt.Errorf("config: at least one sensor required")
	}

	// ------------------------------------------------------------
	// MQTT VALIDATION
	// ------------------------------------------------------------

	m := cfg.Persond.MQTT
	if m.Broker == "" {
		return fmt.Errorf("config: mqtt.broker required")
	}
	if m.QoS < 0 || m.QoS > 2 {
		return fmt.Errorf("config: mqtt.qos %d out of range 0-2", m.QoS)
	}

	// ------------------------------------------------------------
	// SENSOR VALIDATION
	// ------------------------------------------------------------

	seenID := make(map[string]struct{})

	// key = device | addr, to catch two sensors claiming one bus slot
	busOwner := make(map[string]string)

	for _, s := range cfg.Persond.Sensors {
		if s.ID == "" {
			return fmt.Errorf("config: sensor id required")
		}
		if _, dup := seenID[s.ID]; dup {
			return fmt.Errorf("config: duplicate sensor id %q", s.ID)
		}
		seenID[s.ID] = struct{}{}

		if s.Poll.IntervalMs < 0 {
			return fmt.Errorf("sensor %q: poll.interval_ms must be >= 0", s.ID)
		}
		if s.ReadGapMs != nil && *s.ReadGapMs < 0 {
			return fmt.Errorf("sensor %q: read_gap_ms must be >= 0", s.ID)
		}

		b := s.Bus
		switch b.Kind {
		case BusI2C:
			if b.Device == "" {
				return fmt.Errorf("sensor %q: bus.device required for i2c", s.ID)
			}
			if b.Addr < 0 || b.Addr > 0x7f {
				return fmt.Errorf("sensor %q: bus.addr 0x%x out of 7-bit range", s.ID, b.Addr)
			}

			key := fmt.Sprintf("%s|%d", b.Device, b.Addr)
			if prev, exists := busOwner[key]; exists && b.Addr != 0 {
				return fmt.Errorf(
					"bus collision: device=%s addr=0x%02x claimed by sensors %q and %q",
					b.Device, b.Addr, prev, s.ID,
				)
			}
			busOwner[key] = s.ID

		case BusModbusTCP:
			if b.Endpoint == "" {
				return fmt.Errorf("sensor %q: bus.endpoint required for modbus-tcp", s.ID)
			}

		case BusModbusRTU:
			if b.Device == "" {
				return fmt.Errorf("sensor %q: bus.device required for modbus-rtu", s.ID)
			}
			if b.BaudRate < 0 {
				return fmt.Errorf("sensor %q: bus.baud_rate must be >= 0", s.ID)
			}

		case "":
			return fmt.Errorf("sensor %q: bus.kind required", s.ID)

		default:
			return fmt.Errorf("sensor %q: unknown bus.kind %q", s.ID, b.Kind)
		}
	}

	return nil
}
