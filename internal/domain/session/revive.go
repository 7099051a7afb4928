package session

import (
	"encoding/json"
	"regexp"
	"time"
)

// isoDatePattern matches ISO-8601 timestamps as serialized by time.Time and
// by JavaScript Date.toISOString (fractional seconds and zone offset both
// optional).
var isoDatePattern = regexp.MustCompile(
	`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)

// reviveDates walks a decoded JSON value and promotes every string that looks
// like an ISO-8601 timestamp to a time.Time.
//
// Known hazard: a free-text field holding an ISO-date-shaped string would be
// mis-promoted too. Acceptable while no schema field collides with the
// pattern in practice.
func reviveDates(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		if isoDatePattern.MatchString(val) {
			if t, err := parseISO(val); err == nil {
				return t
			}
		}
		return val
	case map[string]interface{}:
		for k, item := range val {
			val[k] = reviveDates(item)
		}
		return val
	case []interface{}:
		for i, item := range val {
			val[i] = reviveDates(item)
		}
		return val
	default:
		return val
	}
}

func parseISO(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	// No zone suffix: treat as UTC.
	return time.Parse("2006-01-02T15:04:05", s)
}

// decodeWithDates unmarshals raw JSON into out, reviving ISO-shaped strings
// into timestamps first so time.Time fields round-trip through the string
// store.
func decodeWithDates(raw []byte, out interface{}) error {
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	revived := reviveDates(generic)
	// Re-encode with timestamps normalized to RFC3339 so the typed decode
	// sees values time.Time accepts.
	buf, err := json.Marshal(revived)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, out)
}
