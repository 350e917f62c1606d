package shift

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/validator"
)

const (
	// MinShiftMinutes is the shortest allowed shift.
	MinShiftMinutes = 30
	// MaxShiftMinutes caps a shift at one full day.
	MaxShiftMinutes = 1440
	// MinOvernightMinutes is the shortest allowed midnight-crossing shift.
	MinOvernightMinutes = 120
	// MaxAdvanceMonths bounds how far ahead an assignment may be scheduled.
	MaxAdvanceMonths = 3
)

// ValidateTimeConfig checks a shift's start/end pair against the duration
// rules. Failures are caller-correctable validation errors.
func ValidateTimeConfig(start, end time.Time) error {
	var errs validator.ValidationErrors

	if minuteOfDay(start) == minuteOfDay(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must differ from start_time",
		})
		return errs
	}

	duration := DurationMinutes(start, end)
	switch {
	case duration < MinShiftMinutes:
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: fmt.Sprintf("shift must last at least %d minutes", MinShiftMinutes),
		})
	case duration > MaxShiftMinutes:
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: fmt.Sprintf("shift must not exceed %d minutes", MaxShiftMinutes),
		})
	case IsOvernight(start, end) && duration < MinOvernightMinutes:
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: fmt.Sprintf("overnight shift must last at least %d minutes", MinOvernightMinutes),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateAssignmentDate checks the scheduling window: the date must not be
// in the past (today is allowed) and not beyond today plus MaxAdvanceMonths.
func ValidateAssignmentDate(shiftDate, today time.Time) error {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}

	date := day(shiftDate)
	now := day(today)

	if date.Before(now) {
		return ErrAssignmentDateInPast
	}
	if date.After(now.AddDate(0, MaxAdvanceMonths, 0)) {
		return ErrAssignmentDateTooFar
	}
	return nil
}

// AssignedSlot is one existing assignment's wall-clock interval, carried with
// enough identity to name it in a conflict error.
type AssignedSlot struct {
	AssignmentID string
	ShiftName    string
	Date         time.Time
	Start        time.Time
	End          time.Time
}

// FindConflict returns the first assigned slot whose interval overlaps the
// candidate (date, start, end), or nil when the candidate is clear. Both
// sides are expanded across midnight when overnight.
func FindConflict(date, start, end time.Time, existing []AssignedSlot) *AssignedSlot {
	for i := range existing {
		slot := existing[i]
		if Overlaps(date, start, end, slot.Date, slot.Start, slot.End) {
			return &existing[i]
		}
	}
	return nil
}
