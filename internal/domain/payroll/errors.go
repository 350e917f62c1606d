package payroll

import "errors"

var (
	// Line errors
	ErrLineNotFound         = errors.New("payroll line not found")
	ErrAttendanceIncomplete = errors.New("attendance is missing a check-in or check-out time")
	ErrMissingSalaryRate    = errors.New("user has no salary rate configured")

	// Reward/penalty errors
	ErrRewardPenaltyNotFound = errors.New("reward or penalty record not found")

	// Statement errors
	ErrStatementNotFound = errors.New("payroll statement not found")
)
