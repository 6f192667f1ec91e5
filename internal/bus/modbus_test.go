// internal/bus/modbus_test.go
package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeRegisterReader struct {
	data []byte
	err  error

	gotAddr uint16
	gotQty  uint16
}

func (f *fakeRegisterReader) ReadInputRegisters(addr, qty uint16) ([]byte, error) {
	f.gotAddr, f.gotQty = addr, qty
	return f.data, f.err
}

func TestModbusGatewayRead(t *testing.T) {
	// 39-byte frame needs 20 registers; the gateway pads the window to 40
	// bytes and the trailing pad byte is discarded.
	window := make([]byte, 40)
	for i := range window {
		window[i] = byte(i)
	}

	fake := &fakeRegisterReader{data: window}
	g := &ModbusGateway{cli: fake, register: 0x10}

	buf := make([]byte, 39)
	require.NoError(t, g.Read(context.Background(), buf))
	require.Equal(t, uint16(0x10), fake.gotAddr)
	require.Equal(t, uint16(20), fake.gotQty)
	require.Equal(t, window[:39], buf)
}

func TestModbusGatewayShortWindow(t *testing.T) {
	fake := &fakeRegisterReader{data: make([]byte, 10)}
	g := &ModbusGateway{cli: fake}

	err := g.Read(context.Background(), make([]byte, 39))
	require.Error(t, err)
	require.Contains(t, err.Error(), "short register window")
}

func TestModbusGatewayTransportError(t *testing.T) {
	want := errors.New("connection reset")
	g := &ModbusGateway{cli: &fakeRegisterReader{err: want}}

	err := g.Read(context.Background(), make([]byte, 39))
	require.ErrorIs(t, err, want)
}

func TestModbusGatewayCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &ModbusGateway{cli: &fakeRegisterReader{data: make([]byte, 40)}}
	err := g.Read(ctx, make([]byte, 39))
	require.ErrorIs(t, err, context.Canceled)
}
