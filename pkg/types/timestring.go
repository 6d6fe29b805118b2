package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

var (
	// ErrInvalidTimeString is returned when a value does not match the HH:MM layout.
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

	// ErrTimeOverflow is returned when an arithmetic result crosses midnight.
	ErrTimeOverflow = errors.New("types: time arithmetic overflows past midnight")
)

// TimeString is a time of day in zero-padded "HH:MM" form.
// The zero-padded layout makes lexicographic order equal to chronological order.
type TimeString string

// NewTimeString builds a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" value.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" layout, including zero padding.
func (t TimeString) Validate() error {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if parsed.Format(timeLayout) != string(t) {
		return fmt.Errorf("%w: %q is not zero-padded", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes returns the value as minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the value shifted forward by m minutes.
// Results at or past 24:00 are rejected so interval comparisons stay total-ordered.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += m
	if total >= 24*60 || total < 0 {
		return "", ErrTimeOverflow
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres may hand back TIME columns as
// "HH:MM:SS"; the seconds part is dropped.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) > 5 {
		s = s[:5]
	}
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return err
	}
	*t = ts
	return nil
}
