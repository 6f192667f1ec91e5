// internal/protocol/frame.go
package protocol

import "time"

// Person Sensor wire layout.
// These values define the device protocol and MUST NOT be configurable.

// ---- FRAME GEOMETRY ----

// HeaderBytes is the size of the frame header:
// two reserved bytes followed by the payload length (uint16, little-endian).
const HeaderBytes = 4

// FaceCountOffset is the offset of the face-count byte.
const FaceCountOffset = HeaderBytes

// FacesOffset is the offset of the first face record slot.
const FacesOffset = FaceCountOffset + 1

// FaceBytes is the size of one face record slot:
// box_confidence, left, top, right, bottom, id_confidence, id, is_facing.
const FaceBytes = 8

// MaxFaces is the number of face record slots in every frame.
const MaxFaces = 4

// ChecksumBytes is the size of the trailing checksum (uint16, little-endian).
const ChecksumBytes = 2

// FrameBytes is the fixed total frame length. The sensor always transmits
// all face slots; slots past the declared count are padding.
const FrameBytes = FacesOffset + MaxFaces*FaceBytes + ChecksumBytes

// MinFrameBytes is the shortest decodable frame: header, count, checksum.
const MinFrameBytes = FacesOffset + ChecksumBytes

// ---- DEVICE ----

// DefaultAddr is the fixed I2C address of the sensor.
const DefaultAddr = 0x62

// NumIDs is how many unique identities the sensor can be calibrated with.
const NumIDs = 8

// RecommendedReadGap is the minimum interval between reads suggested by the
// vendor; the sensor refreshes its inference roughly at this rate.
const RecommendedReadGap = 200 * time.Millisecond

// IDNone is the recognition id reported when no identity is assigned or
// recognition is disabled on the device.
const IDNone int8 = -1

// ---- RECORDS ----

// Header is the parsed frame header.
type Header struct {
	PayloadLen uint16
	FaceCount  uint8
}

// Box is a face bounding box in sensor pixel coordinates. The sensor does
// not guarantee Left <= Right or Top <= Bottom.
type Box struct {
	Left   uint8 `json:"left"`
	Top    uint8 `json:"top"`
	Right  uint8 `json:"right"`
	Bottom uint8 `json:"bottom"`
}

// Face is one detected face as reported by the sensor. Field values are
// raw device output: confidences are nominally 0-100 but are not clamped.
type Face struct {
	BoxConfidence uint8 `json:"box_confidence"`
	Box           Box   `json:"box"`
	IsFacing      bool  `json:"is_facing"`
	ID            int8  `json:"id"`
	IDConfidence  uint8 `json:"id_confidence"`
}

// Recognized reports whether the sensor matched this face to a calibrated
// identity.
func (f Face) Recognized() bool {
	return f.ID != IDNone
}
