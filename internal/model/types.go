package model

import (
	"database/sql/driver"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Numeric is a form field that should hold a number but may arrive as a
// string with units or stray characters ("75 kg", "1,5"). Anything that
// cannot be salvaged becomes SQL NULL instead of a validation failure,
// matching how submitted charts have always been stored.
type Numeric struct {
	Valid bool
	Float float64
}

func NumericFrom(f float64) Numeric {
	return Numeric{Valid: true, Float: f}
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = Numeric{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			*n = Numeric{}
			return nil
		}
	}

	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		*n = Numeric{}
		return nil
	}
	*n = Numeric{Valid: true, Float: f}
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float)
}

// Value lets a Numeric be passed straight as a query parameter.
func (n Numeric) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Float, nil
}

func (n Numeric) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	f := n.Float
	return &f
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"01/02/2006",
}

// DateOnly normalizes client-supplied dates to a plain YYYY-MM-DD string
// before storage, so client-local timezones cannot shift the stored day.
// Empty or unparseable input becomes SQL NULL.
type DateOnly string

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = ""
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*d = ""
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = DateOnly(t.Format("2006-01-02"))
			return nil
		}
	}
	*d = ""
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(d))
}

func (d DateOnly) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

func (d DateOnly) String() string {
	return string(d)
}
