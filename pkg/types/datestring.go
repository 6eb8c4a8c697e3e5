package types

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ErrInvalidDateString is returned for malformed date strings
var ErrInvalidDateString = errors.New("invalid date string format, expected YYYY-MM-DD")

// DateString represents a calendar date stored as "YYYY-MM-DD" text.
// Bookings persist dates in this exact form, without timezone or locale.
type DateString string

// NewDateString builds a DateString from a time.Time
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString builds a DateString from raw text, validating the format
func NewDateStringFromString(s string) (DateString, error) {
	ds := DateString(s)
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

// String returns the canonical "YYYY-MM-DD" representation.
func (d DateString) String() string {
	return string(d)
}

// IsZero returns true if the value is empty.
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate checks the "YYYY-MM-DD" format.
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// Time parses the date into a time.Time at midnight UTC.
func (d DateString) Time() (time.Time, error) {
	parsed, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return parsed, nil
}

// AddDays returns a new DateString shifted by the given number of days.
func (d DateString) AddDays(days int) (DateString, error) {
	parsed, err := d.Time()
	if err != nil {
		return "", err
	}
	return DateString(parsed.AddDate(0, 0, days).Format(dateLayout)), nil
}

// IsBefore reports whether d is strictly earlier than other.
// Lexicographic comparison is correct for the fixed-width ISO format.
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}
