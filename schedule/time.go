// Copyright © 2025 The Gotheme Project.

package schedule

import (
	"errors"
	"fmt"
	"time"
)

const (
	// layout is the text form of a TimeOfDay.
	layout = "15:04:05"
)

var (
	// ErrInvalidTime reports an hour, minute or second out of range.
	ErrInvalidTime = errors.New("invalid time of day")
)

type (
	// TimeOfDay is a local wall-clock time with second resolution.
	TimeOfDay struct {
		hour   int
		minute int
		second int
	}
)

// At returns the time of day h:m:00.
func At(h, m int) (TimeOfDay, error) {
	return hms(h, m, 0)
}

// MustAt is At for constants known to be in range.
func MustAt(h, m int) TimeOfDay {
	t, err := At(h, m)
	if err != nil {
		panic(err)
	}
	return t
}

func hms(h, m, s int) (TimeOfDay, error) {
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrInvalidTime, h, m, s)
	}
	return TimeOfDay{hour: h, minute: m, second: s}, nil
}

// Of returns the local wall-clock time of day of an instant.
func Of(t time.Time) TimeOfDay {
	t = t.Local()
	return TimeOfDay{hour: t.Hour(), minute: t.Minute(), second: t.Second()}
}

// Parse reads the HH:MM:SS form. Seconds are dropped, window endpoints are
// only ever set to the minute.
func Parse(s string) (TimeOfDay, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return At(t.Hour(), t.Minute())
}

// Hour of the time of day.
func (t TimeOfDay) Hour() int {
	return t.hour
}

// Minute of the time of day.
func (t TimeOfDay) Minute() int {
	return t.minute
}

// Second of the time of day.
func (t TimeOfDay) Second() int {
	return t.second
}

// seconds since midnight.
func (t TimeOfDay) seconds() int {
	return t.hour*3600 + t.minute*60 + t.second
}

// Compare returns -1, 0 or +1 as t is before, equal to or after u.
func (t TimeOfDay) Compare(u TimeOfDay) int {
	switch d := t.seconds() - u.seconds(); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

// Before reports whether t is earlier in the day than u.
func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t.Compare(u) < 0
}

// String formats the time of day as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

// MarshalText is an encoding.TextMarshaler method for the configuration codecs.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText is an encoding.TextUnmarshaler method for the configuration codecs.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	u, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = u
	return nil
}
