package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(t *testing.T, hhmm string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", hhmm)
	require.NoError(t, err)
	return parsed
}

func date(t *testing.T, yyyymmdd string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", yyyymmdd)
	require.NoError(t, err)
	return parsed
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"standard day shift", "08:00", "16:00", 480},
		{"short shift", "09:00", "09:30", 30},
		{"overnight shift", "22:00", "06:00", 480},
		{"overnight just across midnight", "23:00", "01:00", 120},
		{"almost full day", "00:30", "00:00", 1410},
		{"one minute before midnight", "23:59", "00:01", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DurationMinutes(clock(t, tt.start), clock(t, tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsOvernight(t *testing.T) {
	assert.False(t, IsOvernight(clock(t, "08:00"), clock(t, "16:00")))
	assert.True(t, IsOvernight(clock(t, "22:00"), clock(t, "06:00")))
	assert.False(t, IsOvernight(clock(t, "00:00"), clock(t, "23:59")))
}

func TestOverlapsSameDay(t *testing.T) {
	tests := []struct {
		name   string
		start1 string
		end1   string
		start2 string
		end2   string
		want   bool
	}{
		{"disjoint", "08:00", "12:00", "13:00", "17:00", false},
		{"contained", "08:00", "17:00", "10:00", "12:00", true},
		{"partial", "08:00", "16:00", "15:00", "23:00", true},
		{"boundary touch does not conflict", "06:00", "10:00", "10:00", "14:00", false},
		{"overnight vs early morning", "22:00", "06:00", "05:00", "09:00", false},
		{"overnight vs late evening", "22:00", "06:00", "21:00", "23:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverlapsSameDay(clock(t, tt.start1), clock(t, tt.end1), clock(t, tt.start2), clock(t, tt.end2))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlapsAcrossDates(t *testing.T) {
	d := date(t, "2024-12-25")
	next := d.AddDate(0, 0, 1)

	// Overnight 22:00-06:00 on day D spills into day D+1 until 06:00.
	assert.True(t, Overlaps(d, clock(t, "22:00"), clock(t, "06:00"), next, clock(t, "05:00"), clock(t, "13:00")))
	assert.True(t, Overlaps(d, clock(t, "22:00"), clock(t, "06:00"), next, clock(t, "00:30"), clock(t, "04:00")))
	assert.False(t, Overlaps(d, clock(t, "22:00"), clock(t, "06:00"), next, clock(t, "06:00"), clock(t, "14:00")))
	assert.False(t, Overlaps(d, clock(t, "08:00"), clock(t, "16:00"), next, clock(t, "08:00"), clock(t, "16:00")))
}

func TestOverlapsIsSymmetric(t *testing.T) {
	d := date(t, "2024-03-10")
	next := d.AddDate(0, 0, 1)

	pairs := []struct {
		date1, start1, end1 time.Time
		date2, start2, end2 time.Time
	}{
		{d, clock(t, "08:00"), clock(t, "16:00"), d, clock(t, "15:00"), clock(t, "23:00")},
		{d, clock(t, "22:00"), clock(t, "06:00"), next, clock(t, "05:00"), clock(t, "09:00")},
		{d, clock(t, "06:00"), clock(t, "10:00"), d, clock(t, "10:00"), clock(t, "14:00")},
		{d, clock(t, "23:00"), clock(t, "01:00"), next, clock(t, "00:30"), clock(t, "08:00")},
	}

	for _, p := range pairs {
		forward := Overlaps(p.date1, p.start1, p.end1, p.date2, p.start2, p.end2)
		backward := Overlaps(p.date2, p.start2, p.end2, p.date1, p.start1, p.end1)
		assert.Equal(t, forward, backward)
	}
}
