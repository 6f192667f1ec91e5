// internal/bus/i2c.go
package bus

import (
	"context"
	"errors"

	"golang.org/x/exp/io/i2c"
)

// I2C reads frames straight from a Linux /dev/i2c-* device node.
type I2C struct {
	dev *i2c.Device
}

// I2CConfig is minimal transport config.
type I2CConfig struct {
	Device string // device node, e.g. /dev/i2c-1
	Addr   int    // 7-bit device address
}

// OpenI2C opens the device node and claims the address. Fails fast; no
// probing beyond what the kernel does.
func OpenI2C(cfg I2CConfig) (*I2C, error) {
	if cfg.Device == "" {
		return nil, errors.New("bus: i2c device path required")
	}
	if cfg.Addr <= 0 || cfg.Addr > 0x7f {
		return nil, errors.New("bus: i2c address out of 7-bit range")
	}

	dev, err := i2c.Open(&i2c.Devfs{Dev: cfg.Device}, cfg.Addr)
	if err != nil {
		return nil, err
	}
	return &I2C{dev: dev}, nil
}

// Read performs one bus transaction filling buf. The kernel transfer
// cannot be interrupted mid-flight; ctx is honored before it starts.
func (c *I2C) Read(ctx context.Context, buf []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.dev.Read(buf)
}

// Close releases the device node.
func (c *I2C) Close() error {
	if c == nil || c.dev == nil {
		return nil
	}
	return c.dev.Close()
}
