package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:00am", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	assert.Equal(t, "08:30", FormatTimeOfDay(510))
	assert.Equal(t, "00:00", FormatTimeOfDay(0))
	assert.Equal(t, "20:00", FormatTimeOfDay(1200))
}

func TestNewInterval(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end string
		wantErr    error
	}{
		{"valid slot", "09:00", "10:30", nil},
		{"full window", "08:00", "20:00", nil},
		{"end before start", "11:00", "10:00", ErrInvalidTimeRange},
		{"zero length", "10:00", "10:00", ErrInvalidTimeRange},
		{"misaligned start", "09:10", "10:00", ErrNotAligned},
		{"misaligned end", "09:00", "10:15", ErrNotAligned},
		{"before day start", "07:30", "09:00", ErrOutsideWindow},
		{"after day end", "19:00", "20:30", ErrOutsideWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, err := NewInterval(date, tt.start, tt.end, 30, 8, 20)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, interval.Date.Equal(date))
			assert.Less(t, interval.StartMin, interval.EndMin)
		})
	}
}

func TestIntervalOverlaps(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	otherDay := day.Add(24 * time.Hour)
	iv := func(d time.Time, start, end int) Interval {
		return Interval{Date: d, StartMin: start, EndMin: end}
	}

	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"identical", iv(day, 540, 600), iv(day, 540, 600), true},
		{"partial overlap", iv(day, 540, 600), iv(day, 570, 630), true},
		{"containment", iv(day, 540, 660), iv(day, 570, 600), true},
		{"touching end-to-start", iv(day, 540, 600), iv(day, 600, 660), false},
		{"touching start-to-end", iv(day, 600, 660), iv(day, 540, 600), false},
		{"disjoint", iv(day, 540, 600), iv(day, 660, 720), false},
		{"same minutes different dates", iv(day, 540, 600), iv(otherDay, 540, 600), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestIntervalEnd(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	iv := Interval{Date: day, StartMin: 540, EndMin: 600}
	assert.Equal(t, day.Add(10*time.Hour), iv.End())
}
