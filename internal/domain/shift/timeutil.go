package shift

import "time"

const minutesPerDay = 24 * 60

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DurationMinutes returns the length of a shift in minutes. A shift whose end
// is not after its start is taken to cross midnight.
func DurationMinutes(start, end time.Time) int {
	startMin := minuteOfDay(start)
	endMin := minuteOfDay(end)

	if endMin > startMin {
		return endMin - startMin
	}
	return (minutesPerDay - startMin) + endMin
}

// IsOvernight reports whether the shift crosses midnight.
func IsOvernight(start, end time.Time) bool {
	return minuteOfDay(end) < minuteOfDay(start)
}

// absoluteRange materializes a (date, start, end) triple into absolute start
// and end instants, pushing the end into the next day for overnight shifts.
func absoluteRange(date, start, end time.Time) (time.Time, time.Time) {
	from := time.Date(date.Year(), date.Month(), date.Day(), start.Hour(), start.Minute(), 0, 0, time.UTC)
	to := from.Add(time.Duration(DurationMinutes(start, end)) * time.Minute)
	return from, to
}

// Overlaps reports whether two dated shift intervals overlap on the wall
// clock, both expanded across midnight when overnight. Intervals are
// half-open: touching boundaries do not overlap.
func Overlaps(date1, start1, end1, date2, start2, end2 time.Time) bool {
	from1, to1 := absoluteRange(date1, start1, end1)
	from2, to2 := absoluteRange(date2, start2, end2)

	return from1.Before(to2) && from2.Before(to1)
}

// OverlapsSameDay is the date-free variant for two shifts on one calendar day.
func OverlapsSameDay(start1, end1, start2, end2 time.Time) bool {
	day := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	return Overlaps(day, start1, end1, day, start2, end2)
}
