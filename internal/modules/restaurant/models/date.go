package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
)

// Date is a calendar day kept as an ISO "YYYY-MM-DD" string.
// Postgres hands DATE columns back as time.Time, SQLite as text; both end up
// in the same string form so range comparisons stay lexical.
type Date string

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(analytics.DateLayout))
	case string:
		*d = Date(trimDay(v))
	case []byte:
		*d = Date(trimDay(string(v)))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

func (d Date) String() string { return string(d) }

// Valid reports whether d parses as a calendar day.
func (d Date) Valid() bool {
	_, err := time.Parse(analytics.DateLayout, string(d))
	return err == nil
}

func trimDay(s string) string {
	if len(s) > len(analytics.DateLayout) {
		return s[:len(analytics.DateLayout)]
	}
	return s
}
