package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// zoneless is the ISO-8601 form written without an offset, e.g.
// 2024-05-01T10:00:00.123456. It is read as local time.
const zoneless = "2006-01-02T15:04:05.999999999"

// Timestamp is a time.Time that remembers the text it was decoded from and
// writes that text back unchanged. Timestamps built with NewTimestamp are
// written as RFC 3339.
type Timestamp struct {
	time.Time
	raw string
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.raw != "" {
		return json.Marshal(t.raw)
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		var zerr error
		parsed, zerr = time.ParseInLocation(zoneless, s, time.Local)
		if zerr != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
	}

	*t = Timestamp{Time: parsed, raw: s}
	return nil
}
