// internal/protocol/checksum.go
package protocol

// Checksum computes the frame integrity value: the arithmetic sum of the
// given bytes, wrapping mod 2^16. The sensor stores the result low byte
// first in the final two bytes of the frame, covering everything before it.
func Checksum(b []byte) uint16 {
	var sum uint16
	for _, v := range b {
		sum += uint16(v)
	}
	return sum
}
