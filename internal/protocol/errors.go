// internal/protocol/errors.go
package protocol

import "errors"

var (
	// ErrTruncated indicates the buffer is shorter than the minimum valid
	// frame. Typical cause: a short bus read.
	ErrTruncated = errors.New("protocol: truncated frame")

	// ErrChecksumMismatch indicates the frame failed integrity validation.
	// The bytes are untrustworthy; callers should discard the frame and
	// retry at the bus-read level.
	ErrChecksumMismatch = errors.New("protocol: checksum mismatch")

	// ErrInvalidFaceCount indicates the declared face count exceeds what
	// the frame can carry. The checksum passed, so this usually means
	// misaligned or non-protocol data behind a checksum collision.
	ErrInvalidFaceCount = errors.New("protocol: invalid face count")
)
