package shift

import "errors"

var (
	// Shift errors
	ErrShiftNotFound       = errors.New("shift not found")
	ErrShiftNameExists     = errors.New("shift with this name already exists")
	ErrShiftHasAssignments = errors.New("shift cannot be deleted while assignments reference it")

	// Assignment errors
	ErrAssignmentNotFound   = errors.New("shift assignment not found")
	ErrDuplicateAssignment  = errors.New("user is already assigned to this shift on this date")
	ErrConflictingSchedule  = errors.New("assignment overlaps an existing shift on the user's calendar")
	ErrAssignmentDateInPast = errors.New("shift date must not be in the past")
	ErrAssignmentDateTooFar = errors.New("shift date must be within 3 months from today")

	// Request data errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
