package entity

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrOutsideWindow    = errors.New("time outside scheduling window")
	ErrNotAligned       = errors.New("time not aligned to slot granularity")
)

// Interval is a half-open time range [StartMin, EndMin) on a calendar
// date, in minutes from midnight. Touching endpoints do not overlap.
type Interval struct {
	Date     time.Time // midnight UTC
	StartMin int
	EndMin   int
}

// ParseTimeOfDay parses "HH:MM" into minutes from midnight.
func ParseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatTimeOfDay renders minutes from midnight as "HH:MM".
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses "YYYY-MM-DD" into a midnight-UTC date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	return d, nil
}

// NewInterval validates and builds an interval: start must precede end,
// both must align to slotMinutes and fall inside the scheduling window
// [dayStartHour, dayEndHour].
func NewInterval(date time.Time, start, end string, slotMinutes, dayStartHour, dayEndHour int) (Interval, error) {
	startMin, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	endMin, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}

	if endMin <= startMin {
		return Interval{}, fmt.Errorf("%w: %s >= %s", ErrInvalidTimeRange, start, end)
	}
	if startMin%slotMinutes != 0 || endMin%slotMinutes != 0 {
		return Interval{}, fmt.Errorf("%w: %d minutes", ErrNotAligned, slotMinutes)
	}
	if startMin < dayStartHour*60 || endMin > dayEndHour*60 {
		return Interval{}, fmt.Errorf("%w: %02d:00-%02d:00", ErrOutsideWindow, dayStartHour, dayEndHour)
	}

	return Interval{
		Date:     time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		StartMin: startMin,
		EndMin:   endMin,
	}, nil
}

// Overlaps reports whether two intervals share at least one instant
// under half-open semantics. Intervals on different dates never overlap.
func (i Interval) Overlaps(other Interval) bool {
	if !i.Date.Equal(other.Date) {
		return false
	}
	return i.StartMin < other.EndMin && other.StartMin < i.EndMin
}

// End returns the wall-clock end of the interval.
func (i Interval) End() time.Time {
	return i.Date.Add(time.Duration(i.EndMin) * time.Minute)
}

func (i Interval) String() string {
	return fmt.Sprintf("%s %s-%s", i.Date.Format(time.DateOnly), FormatTimeOfDay(i.StartMin), FormatTimeOfDay(i.EndMin))
}
