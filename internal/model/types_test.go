package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericAcceptsNumbersAndStrings(t *testing.T) {
	var v struct {
		Weight Numeric `json:"weight"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"weight": 72.5}`), &v))
	assert.True(t, v.Weight.Valid)
	assert.Equal(t, 72.5, v.Weight.Float)

	require.NoError(t, json.Unmarshal([]byte(`{"weight": "175 cm"}`), &v))
	assert.True(t, v.Weight.Valid)
	assert.Equal(t, 175.0, v.Weight.Float)
}

func TestNumericInvalidBecomesNull(t *testing.T) {
	var v struct {
		Pulse Numeric `json:"pulse"`
	}
	for _, raw := range []string{`{"pulse": "n/a"}`, `{"pulse": ""}`, `{"pulse": null}`} {
		require.NoError(t, json.Unmarshal([]byte(raw), &v), raw)
		assert.False(t, v.Pulse.Valid, raw)

		val, err := v.Pulse.Value()
		require.NoError(t, err)
		assert.Nil(t, val, raw)
	}
}

func TestNumericRoundTripsExactly(t *testing.T) {
	n := NumericFrom(175)
	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, "175", string(out))
}

func TestDateOnlyNormalizesTimestamps(t *testing.T) {
	var v struct {
		Date DateOnly `json:"date"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"date": "2025-03-01T23:30:00.000Z"}`), &v))
	assert.Equal(t, "2025-03-01", v.Date.String())

	require.NoError(t, json.Unmarshal([]byte(`{"date": "2025-03-01"}`), &v))
	assert.Equal(t, "2025-03-01", v.Date.String())
}

func TestDateOnlyInvalidBecomesNull(t *testing.T) {
	var v struct {
		Date DateOnly `json:"date"`
	}
	for _, raw := range []string{`{"date": "soon"}`, `{"date": ""}`, `{"date": null}`} {
		require.NoError(t, json.Unmarshal([]byte(raw), &v), raw)

		val, err := v.Date.Value()
		require.NoError(t, err)
		assert.Nil(t, val, raw)
	}
}
