// internal/config/config.go
package config

type Config struct {
	Persond PersondConfig `yaml:"persond"`
}

type PersondConfig struct {
	MQTT    MQTTConfig     `yaml:"mqtt"`
	Sensors []SensorConfig `yaml:"sensors"`
}

// ---- MQTT ----

type MQTTConfig struct {
	Broker      string `yaml:"broker"`
	ClientID    string `yaml:"client_id"`
	TopicPrefix string `yaml:"topic_prefix"`
	QoS         int    `yaml:"qos"`
	TimeoutMs   int    `yaml:"timeout_ms"`
}

// ---- SENSOR ----

type SensorConfig struct {
	ID  string    `yaml:"id"`
	Bus BusConfig `yaml:"bus"`

	Poll PollConfig `yaml:"poll"`

	// ReadGapMs paces bus reads. nil => vendor-recommended 200ms;
	// 0 => pacing disabled.
	ReadGapMs *int `yaml:"read_gap_ms"`

	// Status opts the sensor into the retained health topic.
	Status bool `yaml:"status"`
}

// ---- BUS ----

type BusConfig struct {
	Kind string `yaml:"kind"` // i2c | modbus-tcp | modbus-rtu

	// i2c + modbus-rtu
	Device string `yaml:"device"`

	// i2c
	Addr int `yaml:"addr"`

	// modbus-tcp
	Endpoint string `yaml:"endpoint"`

	// modbus-tcp + modbus-rtu
	UnitID   uint8  `yaml:"unit_id"`
	Register uint16 `yaml:"register"`
	BaudRate int    `yaml:"baud_rate"`

	TimeoutMs int `yaml:"timeout_ms"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}
