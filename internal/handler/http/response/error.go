package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User domain errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminRequired),
		errors.Is(err, user.ErrStaffRequired):
		Forbidden(w, err.Error())

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "A shift with this name already exists")
	case errors.Is(err, shift.ErrShiftHasAssignments):
		Conflict(w, "Shift still has assignments")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, shift.ErrDuplicateAssignment):
		Conflict(w, "User is already assigned to this shift on this date")
	case errors.Is(err, shift.ErrConflictingSchedule):
		Conflict(w, err.Error())
	case errors.Is(err, shift.ErrAssignmentDateInPast),
		errors.Is(err, shift.ErrAssignmentDateTooFar):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, shift.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "User already has an open attendance record")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Attendance record is already checked out")
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrLineNotFound):
		NotFound(w, "Payroll line not found")
	case errors.Is(err, payroll.ErrAttendanceIncomplete):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrMissingSalaryRate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrRewardPenaltyNotFound):
		NotFound(w, "Reward or penalty record not found")
	case errors.Is(err, payroll.ErrStatementNotFound):
		NotFound(w, "Payroll statement not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
