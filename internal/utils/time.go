package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Timestamp renders as "2006-01-02 15:04:05" in UTC, the format used by the
// leaderboard and the admin activity views.
type Timestamp struct {
	time.Time
}

const TimestampLayout = "2006-01-02 15:04:05"

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func (ts Timestamp) String() string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(TimestampLayout)
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ts.String() + `"`), nil
}

func (ts Timestamp) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	return ts.UTC(), nil
}

func (ts *Timestamp) Scan(value interface{}) error {
	if value == nil {
		ts.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		ts.Time = v.UTC()
		return nil
	case []byte:
		return ts.parse(string(v))
	case string:
		return ts.parse(v)
	default:
		return fmt.Errorf("cannot scan type %T into Timestamp", value)
	}
}

// parse accepts the display layout and the layouts SQLite drivers emit.
func (ts *Timestamp) parse(s string) error {
	for _, layout := range []string{TimestampLayout, "2006-01-02 15:04:05.999999999-07:00", time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as Timestamp", s)
}
