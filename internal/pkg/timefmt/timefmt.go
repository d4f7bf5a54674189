// Package timefmt renders and parses the ISO-8601 timestamps exchanged with
// locker clients.
package timefmt

import (
	"errors"
	"strings"
	"time"
)

// Layout is the output form: UTC, microsecond precision, trailing Z.
const Layout = "2006-01-02T15:04:05.000000Z"

// ErrInvalid is returned when a timestamp matches none of the accepted forms.
var ErrInvalid = errors.New("timefmt: invalid ISO-8601 timestamp")

// Naive timestamps carry no zone and are read as UTC. Fractional seconds are
// accepted by time.Parse after the seconds field of every layout.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Format renders t in UTC using Layout.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// FormatPtr renders t, or returns nil when t is nil.
func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Format(*t)
	return &s
}

// Parse reads an ISO-8601 timestamp and returns it in UTC, truncated to the
// microsecond precision of the store.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalid
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Truncate(time.Microsecond), nil
		}
	}

	return time.Time{}, ErrInvalid
}

// ParseOptional parses value when it is non-nil and non-blank.
func ParseOptional(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}

	t, err := Parse(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
