package datetime

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the wire format for all timestamps exposed by the API.
// Schedules are minute-aligned, so seconds are never serialized.
const Layout = "2006-01-02T15:04"

// Minute is a time.Time that marshals to and from the minute-precision
// wire format.
type Minute time.Time

// New wraps a time.Time.
func New(t time.Time) Minute { return Minute(t) }

// Time returns the underlying time.Time.
func (m Minute) Time() time.Time { return time.Time(m) }

func (m Minute) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(m).Format(Layout) + `"`), nil
}

func (m *Minute) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return fmt.Errorf("invalid datetime %q, expected format %s: %w", s, Layout, err)
	}
	*m = Minute(t)
	return nil
}
