// internal/status/encode_test.go
package status

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamzrod/person-sensor/internal/protocol"
)

func TestEncodePayload(t *testing.T) {
	raw := Encode(Snapshot{Health: HealthError, LastErrorCode: CodeChecksum, SecondsInError: 12})

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, "error", got["health"])
	require.EqualValues(t, HealthError, got["health_code"])
	require.EqualValues(t, CodeChecksum, got["last_error_code"])
	require.EqualValues(t, 12, got["seconds_in_error"])
}

func TestCodeFor(t *testing.T) {
	cases := []struct {
		err  error
		want uint16
	}{
		{nil, CodeNone},
		{protocol.ErrTruncated, CodeTruncated},
		{fmt.Errorf("wrapped: %w", protocol.ErrChecksumMismatch), CodeChecksum},
		{protocol.ErrInvalidFaceCount, CodeFaceCount},
		{errors.New("i2c: remote I/O error"), CodeIO},
	}

	for _, c := range cases {
		require.Equal(t, c.want, CodeFor(c.err), "err=%v", c.err)
	}
}
