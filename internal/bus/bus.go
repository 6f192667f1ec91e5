// internal/bus/bus.go
package bus

import "context"

// Conn is the narrow read contract the sensor core depends on: fill buf
// with exactly len(buf) bytes from the device, or fail. One transaction
// per call, no retries. Retry policy belongs to the caller.
//
// The sensor's read path never writes; write and configuration operations
// are deliberately absent from this interface.
type Conn interface {
	Read(ctx context.Context, buf []byte) error
	Close() error
}
