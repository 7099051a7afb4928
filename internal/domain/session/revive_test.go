package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISO(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "RFC3339 with zone",
			in:   "2026-03-01T09:00:00Z",
			want: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "fractional seconds, JS toISOString shape",
			in:   "2026-03-01T09:00:00.250Z",
			want: time.Date(2026, 3, 1, 9, 0, 0, 250_000_000, time.UTC),
		},
		{
			name: "no zone suffix treated as UTC",
			in:   "2026-03-01T09:00:00",
			want: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseISO(tc.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v want %v", got, tc.want)
		})
	}
}

func TestReviveDates_NestedStructures(t *testing.T) {
	in := map[string]interface{}{
		"created_at": "2026-03-01T09:00:00Z",
		"nested": map[string]interface{}{
			"trial_end_at": "2026-03-15T09:00:00.000Z",
		},
		"list": []interface{}{"2026-01-02T00:00:00Z", "not a date"},
		"bio":  "likes 2026 road trips",
		"age":  float64(29),
	}

	out := reviveDates(in).(map[string]interface{})

	_, ok := out["created_at"].(time.Time)
	assert.True(t, ok, "top-level timestamp promoted")

	nested := out["nested"].(map[string]interface{})
	_, ok = nested["trial_end_at"].(time.Time)
	assert.True(t, ok, "nested timestamp promoted")

	list := out["list"].([]interface{})
	_, ok = list[0].(time.Time)
	assert.True(t, ok, "timestamp inside array promoted")
	assert.Equal(t, "not a date", list[1])

	assert.Equal(t, "likes 2026 road trips", out["bio"])
	assert.Equal(t, float64(29), out["age"])
}

func TestDecodeWithDates_TypedRoundTrip(t *testing.T) {
	type record struct {
		Name    string     `json:"name"`
		EndsAt  *time.Time `json:"ends_at"`
		Started time.Time  `json:"started"`
	}

	raw := []byte(`{"name":"trial","ends_at":"2026-03-15T09:00:00.000Z","started":"2026-03-01T09:00:00"}`)

	var rec record
	require.NoError(t, decodeWithDates(raw, &rec))

	assert.Equal(t, "trial", rec.Name)
	require.NotNil(t, rec.EndsAt)
	assert.True(t, rec.EndsAt.Equal(time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)))
	assert.True(t, rec.Started.Equal(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)))
}

func TestDecodeWithDates_RejectsMalformedJSON(t *testing.T) {
	var out map[string]interface{}
	assert.Error(t, decodeWithDates([]byte(`{"broken":`), &out))
}
