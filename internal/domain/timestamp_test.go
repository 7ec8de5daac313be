package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestamp_UnmarshalFormats(t *testing.T) {
	cases := map[string]time.Time{
		`"2024-05-01T10:00:00.123456"`:       time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.Local),
		`"2024-05-01T10:00:00"`:              time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local),
		`"2024-05-01T10:00:00Z"`:             time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		`"2024-05-01T12:00:00.5+02:00"`:      time.Date(2024, 5, 1, 10, 0, 0, 500000000, time.UTC),
		`"2024-05-01T10:00:00.000001+00:00"`: time.Date(2024, 5, 1, 10, 0, 0, 1000, time.UTC),
	}

	for in, want := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(in), &ts); err != nil {
			t.Fatalf("Unmarshal(%s) err = %v, want nil", in, err)
		}
		if !ts.Equal(want) {
			t.Fatalf("Unmarshal(%s) = %v, want %v", in, ts.Time, want)
		}
	}
}

func TestTimestamp_KeepsDecodedText(t *testing.T) {
	for _, in := range []string{
		`"2024-05-01T10:00:00.123456"`,
		`"2024-05-01T10:00:00+00:00"`,
		`"2024-05-01T10:00:00.100Z"`,
	} {
		var ts Timestamp
		if err := json.Unmarshal([]byte(in), &ts); err != nil {
			t.Fatalf("Unmarshal(%s) err = %v, want nil", in, err)
		}
		out, err := json.Marshal(ts)
		if err != nil {
			t.Fatalf("Marshal() err = %v, want nil", err)
		}
		if string(out) != in {
			t.Fatalf("Marshal() = %s, want %s", out, in)
		}
	}
}

func TestTimestamp_NewIsRFC3339(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 600000000, time.UTC))

	out, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal() err = %v, want nil", err)
	}
	if string(out) != `"2024-01-02T03:04:05.6Z"` {
		t.Fatalf("Marshal() = %s, want %s", out, `"2024-01-02T03:04:05.6Z"`)
	}
}

func TestTimestamp_Invalid(t *testing.T) {
	for _, in := range []string{`"yesterday"`, `"2024-13-01T00:00:00"`, `42`} {
		var ts Timestamp
		if err := json.Unmarshal([]byte(in), &ts); err == nil {
			t.Fatalf("Unmarshal(%s) err = nil, want non-nil", in)
		}
	}
}
