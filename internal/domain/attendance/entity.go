package attendance

import "time"

// Attendance is one check-in/check-out pair for a user. Once CheckOutTime is
// set the record is a finished, immutable input to payroll.
type Attendance struct {
	ID           string
	UserID       string
	ShiftID      *string
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields for read paths
	UserName  *string
	ShiftName *string
}

type Status string

const (
	StatusCheckedIn Status = "checked_in"
	StatusCompleted Status = "completed"
)

// IsComplete reports whether both timestamps are present.
func (a Attendance) IsComplete() bool {
	return a.CheckOutTime != nil
}
