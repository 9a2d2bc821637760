// Package dates holds the date helpers shared by models and storage.
// Calendar dates (birthdates, "date it happened") travel as YYYY-MM-DD.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the wire and storage layout for calendar dates.
const Layout = "2006-01-02"

// ErrMalformedDate is returned when a date string is not YYYY-MM-DD.
var ErrMalformedDate = errors.New("malformed date")

// Parse parses a YYYY-MM-DD string into a UTC midnight time.
func Parse(value string) (time.Time, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, value)
	}
	return t, nil
}

// Format renders t as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// FormatPtr renders t, or returns nil if t is nil.
func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Format(*t)
	return &s
}

// ParsePtr is the inverse of FormatPtr. Nil or empty input yields nil.
func ParsePtr(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := Parse(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FromAge synthesizes a birthdate for someone who is age years old in now's
// year: January 1st of (year - age).
func FromAge(now time.Time, age int) time.Time {
	return time.Date(now.Year()-age, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// YearsBetween returns the number of whole years elapsed from from to to.
func YearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}
