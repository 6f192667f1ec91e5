// internal/config/validate_test.go
package config

import "testing"

// helper to build a minimal valid config quickly
func i2cSensor(id, device string, addr int) SensorConfig {
	return SensorConfig{
		ID: id,
		Bus: BusConfig{
			Kind:   BusI2C,
			Device: device,
			Addr:   addr,
		},
	}
}

func cfgWith(sensors ...SensorConfig) *Config {
	return &Config{
		Persond: PersondConfig{
			MQTT:    MQTTConfig{Broker: "tcp://localhost:1883"},
			Sensors: sensors,
		},
	}
}

// ---- tests ----

func TestValidate_Minimal(t *testing.T) {
	cfg := cfgWith(i2cSensor("door", "/dev/i2c-1", 0x62))

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_NoSensors(t *testing.T) {
	if err := Validate(cfgWith()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_MissingBroker(t *testing.T) {
	cfg := cfgWith(i2cSensor("door", "/dev/i2c-1", 0x62))
	cfg.Persond.MQTT.Broker = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_QoSOutOfRange(t *testing.T) {
	cfg := cfgWith(i2cSensor("door", "/dev/i2c-1", 0x62))
	cfg.Persond.MQTT.QoS = 3

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_DuplicateSensorID(t *testing.T) {
	cfg := cfgWith(
		i2cSensor("door", "/dev/i2c-1", 0x62),
		i2cSensor("door", "/dev/i2c-2", 0x62),
	)

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_BusCollision(t *testing.T) {
	cfg := cfgWith(
		i2cSensor("door", "/dev/i2c-1", 0x62),
		i2cSensor("hall", "/dev/i2c-1", 0x62),
	)

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected collision error, got nil")
	}
}

func TestValidate_SameAddrDifferentBusAllowed(t *testing.T) {
	cfg := cfgWith(
		i2cSensor("door", "/dev/i2c-1", 0x62),
		i2cSensor("hall", "/dev/i2c-2", 0x62),
	)

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ModbusTCPNeedsEndpoint(t *testing.T) {
	cfg := cfgWith(SensorConfig{
		ID:  "gw",
		Bus: BusConfig{Kind: BusModbusTCP},
	})

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_UnknownBusKind(t *testing.T) {
	cfg := cfgWith(SensorConfig{
		ID:  "x",
		Bus: BusConfig{Kind: "spi"},
	})

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := cfgWith(i2cSensor("door", "/dev/i2c-1", 0))

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Normalize(cfg)

	s := cfg.Persond.Sensors[0]
	if s.Bus.Addr != DefaultI2CAddr {
		t.Fatalf("addr default: got 0x%x want 0x%x", s.Bus.Addr, DefaultI2CAddr)
	}
	if s.Poll.IntervalMs != DefaultIntervalMs {
		t.Fatalf("interval default: got %d want %d", s.Poll.IntervalMs, DefaultIntervalMs)
	}
	if cfg.Persond.MQTT.TopicPrefix != DefaultTopicPrefix {
		t.Fatalf("topic prefix default: got %q", cfg.Persond.MQTT.TopicPrefix)
	}
	if cfg.Persond.MQTT.ClientID != DefaultClientID {
		t.Fatalf("client id default: got %q", cfg.Persond.MQTT.ClientID)
	}
}
