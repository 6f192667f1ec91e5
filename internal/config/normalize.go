// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultIntervalMs  = 200
	DefaultTimeoutMs   = 3000
	DefaultI2CAddr     = 0x62
	DefaultClientID    = "persond"
	DefaultTopicPrefix = "person-sensor"
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	m := &cfg.Persond.MQTT
	if m.ClientID == "" {
		m.ClientID = DefaultClientID
	}
	if m.TopicPrefix == "" {
		m.TopicPrefix = DefaultTopicPrefix
	}
	if m.TimeoutMs == 0 {
		m.TimeoutMs = DefaultTimeoutMs
	}

	for si := range cfg.Persond.Sensors {
		s := &cfg.Persond.Sensors[si]

		if s.Poll.IntervalMs == 0 {
			s.Poll.IntervalMs = DefaultIntervalMs
		}
		if s.Bus.Kind == BusI2C && s.Bus.Addr == 0 {
			s.Bus.Addr = DefaultI2CAddr
		}
		if s.Bus.TimeoutMs == 0 {
			s.Bus.TimeoutMs = DefaultTimeoutMs
		}
	}
}
