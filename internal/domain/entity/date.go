package entity

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// DateLayout is the wire format of every calendar date.
const DateLayout = "2006-01-02"

// Date is a nullable calendar date encoded as "YYYY-MM-DD" or null.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate returns a valid Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// ParseDate parses s in DateLayout. An empty string yields a null Date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}

	return Date{Time: t, Valid: true}, nil
}

func (d Date) String() string {
	if !d.Valid {
		return ""
	}

	return d.Time.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = Date{}

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

// UnmarshalParam lets echo bind dates from form and query values.
func (d *Date) UnmarshalParam(param string) error {
	parsed, err := ParseDate(param)
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}
