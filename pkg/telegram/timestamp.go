package telegram

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// UnixTime is an instant encoded on the wire as seconds since 1970-01-01T00:00:00Z.
// A JSON null decodes to the zero value.
type UnixTime struct {
	time.Time
}

// NewUnixTime returns t normalized to UTC.
func NewUnixTime(t time.Time) UnixTime {
	return UnixTime{Time: t.UTC()}
}

// UnmarshalJSON accepts an integer or fractional number of seconds, bare or quoted.
func (t *UnixTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = UnixTime{}
		return nil
	}
	s := string(bytes.Trim(b, `"`))

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.Time = time.Unix(secs, 0).UTC()
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("telegram: invalid unix time %q", s)
	}
	secs := int64(f)
	nanos := int64((f - float64(secs)) * float64(time.Second))
	t.Time = time.Unix(secs, nanos).UTC()
	return nil
}

// MarshalJSON writes the instant as a bare number. The zero value encodes as null.
func (t UnixTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	if t.Nanosecond() == 0 {
		return []byte(strconv.FormatInt(t.Unix(), 10)), nil
	}
	secs := float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
	return []byte(strconv.FormatFloat(secs, 'f', -1, 64)), nil
}
