package datetime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalMinutePrecision(t *testing.T) {
	m := New(time.Date(2025, 5, 10, 14, 30, 45, 0, time.UTC))

	b, err := json.Marshal(m)
	require.NoError(t, err)
	// Seconds are dropped on the wire.
	assert.Equal(t, `"2025-05-10T14:30"`, string(b))
}

func TestUnmarshal(t *testing.T) {
	var m Minute
	require.NoError(t, json.Unmarshal([]byte(`"2025-05-10T14:30"`), &m))
	assert.Equal(t, time.Date(2025, 5, 10, 14, 30, 0, 0, time.UTC), m.Time())
}

func TestUnmarshal_Invalid(t *testing.T) {
	var m Minute
	err := json.Unmarshal([]byte(`"10/05/2025 14:30"`), &m)
	require.Error(t, err)
}
