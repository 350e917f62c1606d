package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	// GetOpenByUser returns the user's attendance without a check-out, if any.
	GetOpenByUser(ctx context.Context, userID string) (Attendance, error)
	// SetCheckOut closes the record and marks it completed.
	SetCheckOut(ctx context.Context, id string, checkOut time.Time) (Attendance, error)
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)
	// ListCompletedByUserInRange returns completed records whose check-in
	// falls in [from, to).
	ListCompletedByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]Attendance, error)
}
