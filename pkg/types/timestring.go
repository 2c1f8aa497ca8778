package types

import (
	"errors"
	"fmt"
	"time"
)

// timeLayout is the wire format for clock times ("15:04" = HH:MM).
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString is returned for a malformed time value
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange is returned when time arithmetic leaves the day
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeString is a clock time of day in "HH:MM" form.
// It is the canonical representation for slot and booking times: the database
// column, the JSON field and the in-memory value are all the same string, so
// no timezone conversion can corrupt a stored time of day.
//
// Valid values compare correctly with plain string ordering, which IsBefore
// and IsAfter rely on.
type TimeString string

// NewTimeString creates a TimeString from the clock time of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes converts minutes since midnight into a TimeString.
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true for the empty value.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" clock time.
func (t TimeString) Validate() error {
	if len(t) != 5 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// MinuteOfDay returns minutes since midnight.
func (t TimeString) MinuteOfDay() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Both values must be valid; comparison is lexicographic.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes returns t shifted forward by the given number of minutes.
// Fails if the result would leave the current day.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.MinuteOfDay()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes)
}

// MinutesUntil returns the number of minutes from t to other.
// Negative when other is earlier than t.
func (t TimeString) MinutesUntil(other TimeString) (int, error) {
	from, err := t.MinuteOfDay()
	if err != nil {
		return 0, err
	}
	to, err := other.MinuteOfDay()
	if err != nil {
		return 0, err
	}
	return to - from, nil
}
