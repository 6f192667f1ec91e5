// internal/protocol/encode.go
package protocol

import (
	"encoding/binary"
	"fmt"
)

// Encode builds a complete wire frame carrying the given faces. Slots past
// len(faces) are zero padding, matching the fixed-length frames the sensor
// emits. Used by gateway emulators and tests; the read path never encodes.
func Encode(faces []Face) ([]byte, error) {
	if len(faces) > MaxFaces {
		return nil, fmt.Errorf("%w: %d exceeds protocol maximum %d",
			ErrInvalidFaceCount, len(faces), MaxFaces)
	}

	frame := make([]byte, FrameBytes)

	// Header: reserved bytes stay zero; payload length counts everything
	// after the header.
	binary.LittleEndian.PutUint16(frame[2:4], uint16(FrameBytes-HeaderBytes))
	frame[FaceCountOffset] = uint8(len(faces))

	for i, f := range faces {
		rec := frame[FacesOffset+i*FaceBytes:]
		rec[0] = f.BoxConfidence
		rec[1] = f.Box.Left
		rec[2] = f.Box.Top
		rec[3] = f.Box.Right
		rec[4] = f.Box.Bottom
		rec[5] = f.IDConfidence
		rec[6] = uint8(f.ID)
		if f.IsFacing {
			rec[7] = 1
		}
	}

	sumEnd := FrameBytes - ChecksumBytes
	binary.LittleEndian.PutUint16(frame[sumEnd:], Checksum(frame[:sumEnd]))
	return frame, nil
}
