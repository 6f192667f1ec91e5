// internal/publisher/mqtt/client.go
package mqtt

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// Client wraps a paho connection with bounded-wait semantics: every
// operation either completes within the timeout or fails.
type Client struct {
	cli     paho.Client
	timeout time.Duration
}

// Config is minimal transport config.
type Config struct {
	// Broker accepts mqtt://, tcp://, ssl:// or ws:// URLs; credentials
	// may be embedded as user:pass@host.
	Broker   string
	ClientID string
	Timeout  time.Duration
}

// New connects to the broker. Fails fast; reconnect after that is paho's
// responsibility.
func New(cfg Config) (*Client, error) {
	if cfg.Broker == "" {
		return nil, errors.New("mqtt: broker required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}

	opts, err := optionsFromURL(cfg.Broker)
	if err != nil {
		return nil, err
	}
	opts.SetClientID(cfg.ClientID).
		SetConnectTimeout(cfg.Timeout)

	c := &Client{
		cli:     paho.NewClient(opts),
		timeout: cfg.Timeout,
	}

	tok := c.cli.Connect()
	if !tok.WaitTimeout(cfg.Timeout) {
		return nil, fmt.Errorf("mqtt: connect to %s timed out", cfg.Broker)
	}
	if err := tok.Error(); err != nil {
		return nil, err
	}
	return c, nil
}

// Publish delivers one message and waits for the broker handshake
// appropriate to the QoS level.
func (c *Client) Publish(topic string, qos byte, retained bool, payload []byte) error {
	tok := c.cli.Publish(topic, qos, retained, payload)
	if !tok.WaitTimeout(c.timeout) {
		return fmt.Errorf("mqtt: publish to %s timed out", topic)
	}
	return tok.Error()
}

// Close disconnects, allowing in-flight messages a short drain.
func (c *Client) Close() error {
	if c == nil || c.cli == nil {
		return nil
	}
	c.cli.Disconnect(250)
	return nil
}

// optionsFromURL builds ClientOptions from a broker URL. The mqtt scheme
// aliases tcp.
func optionsFromURL(broker string) (*paho.ClientOptions, error) {
	u, err := url.Parse(broker)
	if err != nil {
		return nil, fmt.Errorf("mqtt: bad broker url: %w", err)
	}

	scheme := u.Scheme
	if scheme == "" || scheme == "mqtt" {
		scheme = "tcp"
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(scheme + "://" + u.Host).
		SetAutoReconnect(true).
		SetCleanSession(true)

	if u.User != nil {
		opts.SetUsername(u.User.Username())
		if pwd, ok := u.User.Password(); ok {
			opts.SetPassword(pwd)
		}
	}

	return opts, nil
}
