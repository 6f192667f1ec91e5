// internal/status/constants.go
package status

// Health and error codes published on the status topic.
// These values are part of the external contract and MUST NOT be
// configurable.

// ---- HEALTH CODES ----

// HealthUnknown represents an unknown or boot state.
const HealthUnknown uint16 = 0

// HealthOK represents a healthy sensor.
const HealthOK uint16 = 1

// HealthError represents a sensor error state.
const HealthError uint16 = 2

// HealthStale represents a stale data state.
const HealthStale uint16 = 3

// HealthDisabled represents a disabled sensor state.
const HealthDisabled uint16 = 4

// ---- ERROR CODES ----

// CodeNone means no error.
const CodeNone uint16 = 0

// CodeGeneric is any failure without a more specific code.
const CodeGeneric uint16 = 1

// CodeIO is a bus transaction failure (device absent, transmission error,
// short read).
const CodeIO uint16 = 2

// CodeTruncated is a frame shorter than the minimum valid length.
const CodeTruncated uint16 = 3

// CodeChecksum is a frame integrity failure.
const CodeChecksum uint16 = 4

// CodeFaceCount is a declared face count outside the protocol bounds.
const CodeFaceCount uint16 = 5

// ---- LIMITS ----

// SecondsInErrorMax is the saturation point of the error duration counter.
const SecondsInErrorMax uint16 = 65535
