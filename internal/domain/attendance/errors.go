package attendance

import "errors"

var (
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrAlreadyCheckedIn     = errors.New("user already has an open attendance record")
	ErrAlreadyCheckedOut    = errors.New("attendance record is already checked out")
	ErrCheckOutBeforeCheckIn = errors.New("check-out time must be after check-in time")
)
