// internal/protocol/decode.go
package protocol

import (
	"encoding/binary"
	"fmt"
)

// Decode parses one raw sensor frame into the detected faces, in slot order.
//
// Validation order is fixed: length, checksum, face count, then fields.
// The checksum runs before any field is trusted. All-or-nothing: any
// failure returns a nil slice and a typed error.
//
// Face fields are extracted byte-for-byte with no semantic validation:
// the sensor guarantees neither box orientation nor confidence <= 100,
// and anomalous-but-real output must reach the caller intact.
//
// Decode is pure and holds no state; concurrent calls need no coordination.
func Decode(frame []byte) ([]Face, error) {
	if len(frame) < MinFrameBytes {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d",
			ErrTruncated, len(frame), MinFrameBytes)
	}

	sumEnd := len(frame) - ChecksumBytes
	declared := binary.LittleEndian.Uint16(frame[sumEnd:])
	if computed := Checksum(frame[:sumEnd]); computed != declared {
		return nil, fmt.Errorf("%w: computed=0x%04x declared=0x%04x",
			ErrChecksumMismatch, computed, declared)
	}

	count := int(frame[FaceCountOffset])
	if count > MaxFaces {
		return nil, fmt.Errorf("%w: %d exceeds protocol maximum %d",
			ErrInvalidFaceCount, count, MaxFaces)
	}
	if FacesOffset+count*FaceBytes > sumEnd {
		return nil, fmt.Errorf("%w: %d records do not fit in a %d-byte frame",
			ErrInvalidFaceCount, count, len(frame))
	}

	if count == 0 {
		return nil, nil
	}

	faces := make([]Face, count)
	for i := range faces {
		faces[i] = decodeFace(frame[FacesOffset+i*FaceBytes:])
	}
	return faces, nil
}

// ParseHeader reads the header fields and face count without validating
// the frame. Callers that need trustworthy values must Decode first.
func ParseHeader(frame []byte) (Header, error) {
	if len(frame) < MinFrameBytes {
		return Header{}, fmt.Errorf("%w: got %d bytes, need at least %d",
			ErrTruncated, len(frame), MinFrameBytes)
	}
	return Header{
		PayloadLen: binary.LittleEndian.Uint16(frame[2:4]),
		FaceCount:  frame[FaceCountOffset],
	}, nil
}

func decodeFace(rec []byte) Face {
	return Face{
		BoxConfidence: rec[0],
		Box: Box{
			Left:   rec[1],
			Top:    rec[2],
			Right:  rec[3],
			Bottom: rec[4],
		},
		IDConfidence: rec[5],
		ID:           int8(rec[6]),
		IsFacing:     rec[7] != 0,
	}
}
