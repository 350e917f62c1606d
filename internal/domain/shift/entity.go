package shift

import "time"

// Shift is a named work-time template. StartTime and EndTime carry only the
// wall-clock time of day; an EndTime earlier than StartTime means the shift
// crosses midnight.
type Shift struct {
	ID              string
	Name            string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Assignment binds one user to one shift on one calendar date.
// The (UserID, ShiftID, ShiftDate) triple is unique.
type Assignment struct {
	ID        string
	UserID    string
	ShiftID   string
	ShiftDate time.Time
	Status    AssignmentStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields for read paths
	UserName  *string
	ShiftName *string
	StartTime *time.Time
	EndTime   *time.Time
}

type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "assigned"
	AssignmentStatusCompleted AssignmentStatus = "completed"
	AssignmentStatusCancelled AssignmentStatus = "cancelled"
)

var AssignmentStatusValues = []string{
	string(AssignmentStatusAssigned),
	string(AssignmentStatusCompleted),
	string(AssignmentStatusCancelled),
}
