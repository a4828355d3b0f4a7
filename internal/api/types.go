package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ID is an opaque record identifier. The backend emits integers today but
// nothing here depends on that: the literal text is used in request paths
// and the JSON form it arrived in (number or string) is written back out.
type ID struct {
	text   string
	number bool
}

// NewID returns an identifier that is written as a JSON string.
func NewID(s string) ID {
	return ID{text: s}
}

// NumberID returns an identifier that is written as a JSON number. s must be
// a valid JSON number.
func NumberID(s string) ID {
	return ID{text: s, number: true}
}

// String returns the identifier's literal text.
func (id ID) String() string {
	return id.text
}

// IsZero reports whether the identifier was absent.
func (id ID) IsZero() bool {
	return id.text == ""
}

// Same reports whether id and other name the same record. A record addressed
// as "42" on the command line is the record the backend sent as 42.
func (id ID) Same(other ID) bool {
	return id.text == other.text
}

// UnmarshalJSON accepts a JSON number, a JSON string, or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ID{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = NewID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a number or string, got %s", b)
	}
	*id = NumberID(n.String())
	return nil
}

// MarshalJSON writes the identifier in the form it was decoded from.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.text == "" {
		return []byte("null"), nil
	}
	if id.number {
		return []byte(id.text), nil
	}
	return json.Marshal(id.text)
}

// DisplayLayout is the layout used when a Timestamp is shown to a user.
const DisplayLayout = "2006-01-02 15:04:05"

// timestampLayouts are tried in order. The backend serialises naive
// datetimes without a zone, so the zoneless layouts are parsed as local time.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a nullable point in time as sent by the API. Raw holds the
// original text so values that fail to parse can still be displayed.
type Timestamp struct {
	Time time.Time
	Raw  string
}

// NewTimestamp builds a Timestamp from a parsed time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Raw: t.Format(time.RFC3339Nano)}
}

// Valid reports whether the API sent a value at all.
func (t Timestamp) Valid() bool {
	return t.Raw != ""
}

// Parsed reports whether the value could be interpreted as a time.
func (t Timestamp) Parsed() bool {
	return !t.Time.IsZero()
}

// String formats the time for display, falling back to the raw text.
func (t Timestamp) String() string {
	if t.Parsed() {
		return t.Time.Format(DisplayLayout)
	}
	return t.Raw
}

// UnmarshalJSON accepts null or a string in any of the supported layouts.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string, got %s", b)
	}
	*t = parseTimestamp(s)
	return nil
}

// MarshalJSON writes the raw text back out, or null when absent.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Raw)
}

func parseTimestamp(s string) Timestamp {
	ts := Timestamp{Raw: s}
	if s == "" {
		return ts
	}
	for _, layout := range timestampLayouts {
		loc := time.Local
		if layout == time.RFC3339Nano {
			loc = time.UTC
		}
		if parsed, err := time.ParseInLocation(layout, s, loc); err == nil {
			ts.Time = parsed
			return ts
		}
	}
	return ts
}
